package pwgenvaultplugin

import (
	"context"

	"github.com/hashicorp/vault/sdk/framework"
	"github.com/hashicorp/vault/sdk/logical"
	"github.com/pwgen-vault-plugin/pwgen"
)

func pathValidate(b *pwgenBackend) []*framework.Path {
	return []*framework.Path{
		{
			Pattern: "validate/" + framework.GenericNameRegex("name"),
			Fields: map[string]*framework.FieldSchema{
				"name": {
					Type:        framework.TypeString,
					Description: "Name of the policy to validate against.",
					Required:    true,
				},
				"password": {
					Type:        framework.TypeString,
					Description: "Password to check.",
					DisplayAttrs: &framework.DisplayAttributes{
						Sensitive: true,
					},
				},
			},
			Operations: map[logical.Operation]framework.OperationHandler{
				logical.UpdateOperation: &framework.PathOperation{
					Callback: b.pathValidateWrite,
				},
			},
			HelpSynopsis:    "Check a password against a policy.",
			HelpDescription: "Reports whether a password satisfies the length bounds and character rules of the named policy.",
		},
	}
}

func (b *pwgenBackend) pathValidateWrite(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	name := d.Get("name").(string)

	b.policyMutex.RLock()
	defer b.policyMutex.RUnlock()

	policy, err := getPolicy(ctx, req.Storage, name)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return logical.ErrorResponse("policy %q not found", name), nil
	}

	var password *string
	if v, ok := d.GetOk("password"); ok {
		s := v.(string)
		password = &s
	}

	result := pwgen.Validate(password, policy.Rules, policy.MinLength, policy.MaxLength)
	if result == pwgen.ConfigError {
		b.Logger().Warn("stored policy has a malformed rule vector",
			"policy", name,
			"rules_len", len(policy.Rules),
		)
	}

	return &logical.Response{
		Data: map[string]interface{}{
			"result": result.String(),
			"code":   result.Code(),
		},
	}, nil
}
