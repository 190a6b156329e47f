package pwgenvaultplugin

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/hashicorp/vault/sdk/logical"
	"github.com/pwgen-vault-plugin/pwgen"
)

func readCreds(t *testing.T, b logical.Backend, s logical.Storage, role string) *logical.Response {
	t.Helper()
	req := &logical.Request{
		Operation: logical.ReadOperation,
		Path:      "creds/" + role,
		Storage:   s,
	}
	resp, err := b.HandleRequest(context.Background(), req)
	if err != nil {
		t.Fatalf("read creds: %v", err)
	}
	if resp == nil {
		t.Fatal("read creds: nil response")
	}
	return resp
}

var referenceBatch = []string{"BqRNgs[6O", "0;f#3VP0ok", "wnM4\"3*bk", "8Ppwjy!M", "pZ55\\}N"}

func TestPathCreds_SeededRoleIsReproducible(t *testing.T) {
	b, storage := getTestBackend(t)

	writePolicy(t, b, storage, "strict", strictPolicy())
	writeRole(t, b, storage, "fixed", map[string]interface{}{
		"policy": "strict",
		"count":  5,
		"seed":   pwgen.DefaultSeed,
	})

	for i := 0; i < 2; i++ {
		resp := readCreds(t, b, storage, "fixed")
		if resp.IsError() {
			t.Fatalf("read %d: %v", i, resp.Error())
		}
		got := resp.Data["passwords"].([]string)
		if !reflect.DeepEqual(got, referenceBatch) {
			t.Errorf("read %d: passwords = %q, want %q", i, got, referenceBatch)
		}
		if resp.Data["policy"] != "strict" {
			t.Errorf("policy = %v, want strict", resp.Data["policy"])
		}
	}
}

func TestPathCreds_UnseededRoleUsesSeedFunc(t *testing.T) {
	b, storage := getTestBackend(t)
	b.(*pwgenBackend).seedFunc = func() (int64, error) {
		return pwgen.DefaultSeed, nil
	}

	writePolicy(t, b, storage, "strict", strictPolicy())
	writeRole(t, b, storage, "fresh", map[string]interface{}{
		"policy": "strict",
		"count":  2,
	})

	resp := readCreds(t, b, storage, "fresh")
	if resp.IsError() {
		t.Fatalf("read creds: %v", resp.Error())
	}
	got := resp.Data["passwords"].([]string)
	if !reflect.DeepEqual(got, referenceBatch[:2]) {
		t.Errorf("passwords = %q, want %q", got, referenceBatch[:2])
	}
}

func TestPathCreds_SeedFuncError(t *testing.T) {
	b, storage := getTestBackend(t)
	b.(*pwgenBackend).seedFunc = func() (int64, error) {
		return 0, errors.New("entropy exhausted")
	}

	writePolicy(t, b, storage, "strict", strictPolicy())
	writeRole(t, b, storage, "fresh", map[string]interface{}{"policy": "strict"})

	req := &logical.Request{
		Operation: logical.ReadOperation,
		Path:      "creds/fresh",
		Storage:   storage,
	}
	if _, err := b.HandleRequest(context.Background(), req); err == nil {
		t.Error("expected error when no seed can be read")
	}
}

func TestPathCreds_MalformedPolicy(t *testing.T) {
	b, storage := getTestBackend(t)
	ctx := context.Background()

	writePolicy(t, b, storage, "strict", strictPolicy())
	writeRole(t, b, storage, "test-role", map[string]interface{}{"policy": "strict", "count": 3})

	// Corrupt the stored rule vector behind the path's validation
	if err := putPolicy(ctx, storage, "strict", &PolicyEntry{Rules: pwgen.Rules{true}, MinLength: 5, MaxLength: 10}); err != nil {
		t.Fatalf("putPolicy: %v", err)
	}

	resp := readCreds(t, b, storage, "test-role")
	if !resp.IsError() {
		t.Error("expected error response for malformed policy")
	}
}

func TestPathCreds_RoleNotFound(t *testing.T) {
	b, storage := getTestBackend(t)

	resp := readCreds(t, b, storage, "nonexistent")
	if !resp.IsError() {
		t.Error("expected error response for nonexistent role")
	}
}

func TestPathCreds_PolicyDeleted(t *testing.T) {
	b, storage := getTestBackend(t)
	ctx := context.Background()

	writePolicy(t, b, storage, "temp", strictPolicy())
	writeRole(t, b, storage, "orphan", map[string]interface{}{"policy": "temp"})

	req := &logical.Request{
		Operation: logical.DeleteOperation,
		Path:      "config/policies/temp",
		Storage:   storage,
	}
	b.HandleRequest(ctx, req)

	resp := readCreds(t, b, storage, "orphan")
	if !resp.IsError() {
		t.Error("expected error response for orphaned role")
	}
}
