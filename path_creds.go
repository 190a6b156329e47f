package pwgenvaultplugin

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/vault/sdk/framework"
	"github.com/hashicorp/vault/sdk/logical"
	"github.com/pwgen-vault-plugin/pwgen"
)

func pathCreds(b *pwgenBackend) []*framework.Path {
	return []*framework.Path{
		{
			Pattern: "creds/" + framework.GenericNameRegex("name"),
			Fields: map[string]*framework.FieldSchema{
				"name": {
					Type:        framework.TypeString,
					Description: "Name of the role.",
					Required:    true,
				},
			},
			Operations: map[logical.Operation]framework.OperationHandler{
				logical.ReadOperation: &framework.PathOperation{
					Callback: b.pathCredsRead,
				},
			},
			HelpSynopsis:    "Generate a batch of passwords for a role.",
			HelpDescription: "Generates the role's configured number of passwords, each satisfying the role's policy. Passwords are not stored.",
		},
	}
}

func (b *pwgenBackend) pathCredsRead(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	name := d.Get("name").(string)

	b.policyMutex.RLock()
	defer b.policyMutex.RUnlock()

	role, err := getRole(ctx, req.Storage, name)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return logical.ErrorResponse("role %q not found", name), nil
	}

	policy, err := getPolicy(ctx, req.Storage, role.Policy)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return logical.ErrorResponse("policy %q not found for role %q", role.Policy, name), nil
	}

	src, err := b.newSource(role)
	if err != nil {
		return nil, err
	}

	passwords := make([]string, role.Count)
	err = pwgen.Fill(passwords, policy.Rules, policy.MinLength, policy.MaxLength, src,
		pwgen.WithLogger(b.Logger().Named("fill")))
	if errors.Is(err, pwgen.ErrConfig) {
		b.Logger().Warn("stored policy has a malformed rule vector",
			"role", name,
			"policy", role.Policy,
			"rules_len", len(policy.Rules),
		)
		return logical.ErrorResponse("policy %q is misconfigured: rewrite it before generating", role.Policy), nil
	}
	if err != nil {
		return nil, fmt.Errorf("generating passwords for role %q: %w", name, err)
	}

	b.Logger().Debug("generated password batch",
		"role", name,
		"policy", role.Policy,
		"count", role.Count,
		"seeded", role.Seed != nil,
	)

	return &logical.Response{
		Data: map[string]interface{}{
			"passwords": passwords,
			"policy":    role.Policy,
		},
	}, nil
}
