package pwgenvaultplugin

import (
	"context"

	"github.com/hashicorp/vault/sdk/framework"
	"github.com/hashicorp/vault/sdk/logical"
)

const maxRoleCount = 1000

func pathRoles(b *pwgenBackend) []*framework.Path {
	return []*framework.Path{
		{
			Pattern: "roles/" + framework.GenericNameRegex("name"),
			Fields: map[string]*framework.FieldSchema{
				"name": {
					Type:        framework.TypeString,
					Description: "Name of the role.",
					Required:    true,
				},
				"policy": {
					Type:        framework.TypeString,
					Description: "Name of the password policy to generate against.",
					Required:    true,
				},
				"count": {
					Type:        framework.TypeInt,
					Description: "Number of passwords generated per read.",
					Default:     1,
				},
				"seed": {
					Type:        framework.TypeInt64,
					Description: "Fixed seed. When set, every read returns the same batch. Omit for a fresh seed per read.",
				},
			},
			Operations: map[logical.Operation]framework.OperationHandler{
				logical.CreateOperation: &framework.PathOperation{
					Callback: b.pathRolesWrite,
				},
				logical.UpdateOperation: &framework.PathOperation{
					Callback: b.pathRolesWrite,
				},
				logical.ReadOperation: &framework.PathOperation{
					Callback: b.pathRolesRead,
				},
				logical.DeleteOperation: &framework.PathOperation{
					Callback: b.pathRolesDelete,
				},
			},
			ExistenceCheck:  b.pathRolesExistenceCheck,
			HelpSynopsis:    "Manage roles that generate password batches.",
			HelpDescription: "Create, read, update, or delete a role that generates a batch of passwords from a policy.",
		},
		{
			Pattern: "roles/?$",
			Operations: map[logical.Operation]framework.OperationHandler{
				logical.ListOperation: &framework.PathOperation{
					Callback: b.pathRolesList,
				},
			},
			HelpSynopsis:    "List configured roles.",
			HelpDescription: "List the names of all configured roles.",
		},
	}
}

func (b *pwgenBackend) pathRolesExistenceCheck(ctx context.Context, req *logical.Request, d *framework.FieldData) (bool, error) {
	name := d.Get("name").(string)
	role, err := getRole(ctx, req.Storage, name)
	if err != nil {
		return false, err
	}
	return role != nil, nil
}

func (b *pwgenBackend) pathRolesWrite(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	name := d.Get("name").(string)
	policyName := d.Get("policy").(string)
	count := d.Get("count").(int)

	if policyName == "" {
		return logical.ErrorResponse("policy is required"), nil
	}
	if count < 1 || count > maxRoleCount {
		return logical.ErrorResponse("count must be between 1 and %d, got %d", maxRoleCount, count), nil
	}

	// Hold the policy lock so the policy cannot be deleted between the
	// existence check and the role write.
	b.policyMutex.RLock()
	defer b.policyMutex.RUnlock()

	// Verify the referenced policy exists
	policy, err := getPolicy(ctx, req.Storage, policyName)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return logical.ErrorResponse("policy %q not found", policyName), nil
	}

	// Preserve an existing seed if the update does not set one
	existing, err := getRole(ctx, req.Storage, name)
	if err != nil {
		return nil, err
	}

	role := &RoleEntry{
		Policy: policyName,
		Count:  count,
	}

	if v, ok := d.GetOk("seed"); ok {
		seed := v.(int64)
		role.Seed = &seed
	} else if existing != nil {
		role.Seed = existing.Seed
	}

	if err := putRole(ctx, req.Storage, name, role); err != nil {
		return nil, err
	}

	return nil, nil
}

func (b *pwgenBackend) pathRolesRead(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	name := d.Get("name").(string)

	role, err := getRole(ctx, req.Storage, name)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}

	data := map[string]interface{}{
		"policy": role.Policy,
		"count":  role.Count,
	}
	if role.Seed != nil {
		data["seed"] = *role.Seed
	}

	return &logical.Response{Data: data}, nil
}

func (b *pwgenBackend) pathRolesDelete(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	name := d.Get("name").(string)

	if err := deleteRole(ctx, req.Storage, name); err != nil {
		return nil, err
	}

	return nil, nil
}

func (b *pwgenBackend) pathRolesList(ctx context.Context, req *logical.Request, d *framework.FieldData) (*logical.Response, error) {
	roles, err := listRoles(ctx, req.Storage)
	if err != nil {
		return nil, err
	}

	return logical.ListResponse(roles), nil
}
