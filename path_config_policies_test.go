package pwgenvaultplugin

import (
	"context"
	"testing"

	"github.com/hashicorp/vault/sdk/logical"
)

func TestPathConfigPolicies_WriteReadDeleteList(t *testing.T) {
	b, storage := getTestBackend(t)
	ctx := context.Background()

	// Write policy
	writePolicy(t, b, storage, "strict", strictPolicy())

	// Read policy
	req := &logical.Request{
		Operation: logical.ReadOperation,
		Path:      "config/policies/strict",
		Storage:   storage,
	}
	resp, err := b.HandleRequest(ctx, req)
	if err != nil || resp == nil {
		t.Fatalf("read: err=%v, resp=%v", err, resp)
	}
	for _, field := range []string{"require_uppercase", "require_lowercase", "require_digit", "require_punctuation"} {
		if resp.Data[field] != true {
			t.Errorf("%s = %v, want true", field, resp.Data[field])
		}
	}
	if resp.Data["min_length"] != 5 {
		t.Errorf("min_length = %v, want 5", resp.Data["min_length"])
	}
	if resp.Data["max_length"] != 10 {
		t.Errorf("max_length = %v, want 10", resp.Data["max_length"])
	}

	// List policies
	req = &logical.Request{
		Operation: logical.ListOperation,
		Path:      "config/policies/",
		Storage:   storage,
	}
	resp, err = b.HandleRequest(ctx, req)
	if err != nil || resp == nil {
		t.Fatalf("list: err=%v, resp=%v", err, resp)
	}
	keys := resp.Data["keys"].([]string)
	if len(keys) != 1 || keys[0] != "strict" {
		t.Errorf("list keys = %v, want [strict]", keys)
	}

	// Delete policy
	req = &logical.Request{
		Operation: logical.DeleteOperation,
		Path:      "config/policies/strict",
		Storage:   storage,
	}
	resp, err = b.HandleRequest(ctx, req)
	if err != nil || (resp != nil && resp.IsError()) {
		t.Fatalf("delete: err=%v, resp=%v", err, resp)
	}

	// Verify deleted
	req = &logical.Request{
		Operation: logical.ReadOperation,
		Path:      "config/policies/strict",
		Storage:   storage,
	}
	resp, err = b.HandleRequest(ctx, req)
	if err != nil {
		t.Fatalf("read after delete: err=%v", err)
	}
	if resp != nil {
		t.Error("expected nil response after delete")
	}
}

func TestPathConfigPolicies_Defaults(t *testing.T) {
	b, storage := getTestBackend(t)
	ctx := context.Background()

	writePolicy(t, b, storage, "loose", map[string]interface{}{})

	policy, err := getPolicy(ctx, storage, "loose")
	if err != nil {
		t.Fatalf("getPolicy: %v", err)
	}
	if policy.MinLength != defaultMinLength || policy.MaxLength != defaultMaxLength {
		t.Errorf("lengths = [%d, %d], want [%d, %d]", policy.MinLength, policy.MaxLength, defaultMinLength, defaultMaxLength)
	}
	for i, r := range policy.Rules {
		if r {
			t.Errorf("rule %d set by default", i)
		}
	}
}

func TestPathConfigPolicies_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		data map[string]interface{}
	}{
		{"negative min", map[string]interface{}{"min_length": -1, "max_length": 5}},
		{"min above max", map[string]interface{}{"min_length": 10, "max_length": 5}},
		{"more classes than characters", map[string]interface{}{
			"require_uppercase":   true,
			"require_lowercase":   true,
			"require_digit":       true,
			"require_punctuation": true,
			"min_length":          1,
			"max_length":          3,
		}},
		{"max above limit", map[string]interface{}{"min_length": 0, "max_length": 5000000000}},
		{"max just above limit", map[string]interface{}{"min_length": 8, "max_length": 1025}},
		{"class required of empty password", map[string]interface{}{
			"require_digit": true,
			"min_length":    0,
			"max_length":    0,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, storage := getTestBackend(t)
			req := &logical.Request{
				Operation: logical.CreateOperation,
				Path:      "config/policies/bad",
				Storage:   storage,
				Data:      tt.data,
			}
			resp, err := b.HandleRequest(context.Background(), req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp == nil || !resp.IsError() {
				t.Error("expected error response")
			}
			policy, err := getPolicy(context.Background(), storage, "bad")
			if err != nil {
				t.Fatalf("getPolicy: %v", err)
			}
			if policy != nil {
				t.Error("rejected policy should not be stored")
			}
		})
	}
}
