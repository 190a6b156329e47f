package pwgenvaultplugin

import (
	"context"
	"strings"
	"sync"

	"github.com/hashicorp/vault/sdk/framework"
	"github.com/hashicorp/vault/sdk/logical"
)

const backendHelp = `
The pwgen secrets engine generates batches of pseudorandom passwords that
satisfy a named composition policy. Roles with a fixed seed reproduce the
same batch on every read.
`

type pwgenBackend struct {
	*framework.Backend

	// policyMutex guards policies against changing under a batch that is
	// being generated from them.
	policyMutex sync.RWMutex

	// seedFunc supplies seeds for roles without a fixed seed.
	seedFunc func() (int64, error)
}

func Factory(ctx context.Context, conf *logical.BackendConfig) (logical.Backend, error) {
	b := backend()
	if err := b.Setup(ctx, conf); err != nil {
		return nil, err
	}
	return b, nil
}

func backend() *pwgenBackend {
	b := &pwgenBackend{
		seedFunc: randomSeed,
	}

	b.Backend = &framework.Backend{
		Help:        strings.TrimSpace(backendHelp),
		BackendType: logical.TypeLogical,
		PathsSpecial: &logical.Paths{
			SealWrapStorage: []string{
				"config/policies/*",
				"roles/*",
			},
		},
		Paths: framework.PathAppend(
			pathConfigPolicies(b),
			pathRoles(b),
			pathCreds(b),
			pathValidate(b),
		),
	}

	return b
}
