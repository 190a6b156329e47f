package pwgenvaultplugin

import (
	"context"

	"github.com/hashicorp/vault/sdk/framework"
	"github.com/hashicorp/vault/sdk/logical"
	"github.com/pwgen-vault-plugin/pwgen"
)

const (
	defaultMinLength = 8
	defaultMaxLength = 16
)

func pathConfigPolicies(b *pwgenBackend) []*framework.Path {
	return []*framework.Path{
		{
			Pattern: "config/policies/" + framework.GenericNameRegex("name"),
			Fields: map[string]*framework.FieldSchema{
				"name": {
					Type:        framework.TypeString,
					Description: "Name of the password policy.",
					Required:    true,
				},
				"require_uppercase": {
					Type:        framework.TypeBool,
					Description: "Require at least one uppercase letter.",
					Default:     false,
				},
				"require_lowercase": {
					Type:        framework.TypeBool,
					Description: "Require at least one lowercase letter.",
					Default:     false,
				},
				"require_digit": {
					Type:        framework.TypeBool,
					Description: "Require at least one digit.",
					Default:     false,
				},
				"require_punctuation": {
					Type:        framework.TypeBool,
					Description: "Require at least one character that is neither a letter nor a digit.",
					Default:     false,
				},
				"min_length": {
					Type:        framework.TypeInt,
					Description: "Minimum password length, inclusive.",
					Default:     defaultMinLength,
				},
				"max_length": {
					Type:        framework.TypeInt,
					Description: "Maximum password length, inclusive.",
					Default:     defaultMaxLength,
				},
			},
			Operations: map[logical.Operation]framework.OperationHandler{
				logical.CreateOperation: &framework.PathOperation{
					Callback: b.pathConfigPoliciesWrite,
				},
				logical.UpdateOperation: &framework.PathOperation{
					Callback: b.pathConfigPoliciesWrite,
				},
				logical.ReadOperation: &framework.PathOperation{
					Callback: b.pathConfigPoliciesRead,
				},
				logical.DeleteOperation: &framework.PathOperation{
					Callback: b.pathConfigPoliciesDelete,
				},
			},
			ExistenceCheck:  b.pathConfigPoliciesExistenceCheck,
			HelpSynopsis:    "Configure a password composition policy.",
			HelpDescription: "Configure the character classes and length bounds every generated password must satisfy.",
		},
		{
			Pattern: "config/policies/?$",
			Operations: map[logical.Operation]framework.OperationHandler{
				logical.ListOperation: &framework.PathOperation{
					Callback: b.pathConfigPoliciesList,
				},
			},
			HelpSynopsis:    "List configured password policies.",
			HelpDescription: "List the names of all configured password policies.",
		},
	}
}

func (b *pwgenBackend) pathConfigPoliciesExistenceCheck(ctx context.Context, req *logical.Request, d *framework.FieldData) (bool, error) {
	name := d.Get("name").(string)
	policy, err := getPolicy(ctx, req.Storage, name)
	if err != nil {
		return false, err
	}
	return policy != nil, nil
}

func (b *pwgenBackend) pathConfigPoliciesWrite(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	name := d.Get("name").(string)

	policy := &PolicyEntry{
		Rules: pwgen.NewRules(
			d.Get("require_uppercase").(bool),
			d.Get("require_lowercase").(bool),
			d.Get("require_digit").(bool),
			d.Get("require_punctuation").(bool),
		),
		MinLength: d.Get("min_length").(int),
		MaxLength: d.Get("max_length").(int),
	}

	if policy.MinLength < 0 {
		return logical.ErrorResponse("min_length must not be negative"), nil
	}
	if policy.MinLength > policy.MaxLength {
		return logical.ErrorResponse("min_length (%d) must not exceed max_length (%d)", policy.MinLength, policy.MaxLength), nil
	}
	if policy.MaxLength > pwgen.MaxLength {
		return logical.ErrorResponse("max_length must not exceed %d, got %d", pwgen.MaxLength, policy.MaxLength), nil
	}
	// Generation retries until a candidate passes, so a policy no candidate
	// can pass would hang every credential read.
	if err := pwgen.Satisfiable(policy.Rules, policy.MinLength, policy.MaxLength); err != nil {
		b.Logger().Warn("rejected unsatisfiable password policy",
			"policy", name,
			"rules", policy.Rules.Names(),
			"min_length", policy.MinLength,
			"max_length", policy.MaxLength,
		)
		return logical.ErrorResponse("policy %q can never be satisfied: %s", name, err), nil
	}

	b.policyMutex.Lock()
	defer b.policyMutex.Unlock()

	if err := putPolicy(ctx, req.Storage, name, policy); err != nil {
		return nil, err
	}

	return nil, nil
}

func (b *pwgenBackend) pathConfigPoliciesRead(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	name := d.Get("name").(string)

	policy, err := getPolicy(ctx, req.Storage, name)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, nil
	}

	return &logical.Response{
		Data: map[string]interface{}{
			"require_uppercase":   policy.Rules.Requires(pwgen.HasUpper),
			"require_lowercase":   policy.Rules.Requires(pwgen.HasLower),
			"require_digit":       policy.Rules.Requires(pwgen.HasDigit),
			"require_punctuation": policy.Rules.Requires(pwgen.HasPunct),
			"min_length":          policy.MinLength,
			"max_length":          policy.MaxLength,
		},
	}, nil
}

func (b *pwgenBackend) pathConfigPoliciesDelete(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	name := d.Get("name").(string)

	b.policyMutex.Lock()
	defer b.policyMutex.Unlock()

	if err := deletePolicy(ctx, req.Storage, name); err != nil {
		return nil, err
	}

	return nil, nil
}

func (b *pwgenBackend) pathConfigPoliciesList(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	policies, err := listPolicies(ctx, req.Storage)
	if err != nil {
		return nil, err
	}

	return logical.ListResponse(policies), nil
}
