package pwgenvaultplugin

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/pwgen-vault-plugin/pwgen"
)

// randomSeed reads a seed from the system entropy pool.
func randomSeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

// newSource returns the draw source for one credential read. Roles with a
// fixed seed start from the same state every time.
func (b *pwgenBackend) newSource(role *RoleEntry) (pwgen.Source, error) {
	if role.Seed != nil {
		return pwgen.NewJavaRandom(*role.Seed), nil
	}
	seed, err := b.seedFunc()
	if err != nil {
		return nil, fmt.Errorf("reading seed: %w", err)
	}
	return pwgen.NewJavaRandom(seed), nil
}
