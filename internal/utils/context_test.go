// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestOperationIDCtxKey(t *testing.T) {
	if OperationIDCtxKey.String() != "operationID" {
		t.Errorf("expected 'operationID', got '%s'", OperationIDCtxKey.String())
	}
}

func TestGetOperationIDFromContext_Success(t *testing.T) {
	ctx := WithOperationID(context.Background(), "op-1")

	id, ok := GetOperationIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if id != "op-1" {
		t.Errorf("expected 'op-1', got '%s'", id)
	}
}

func TestGetOperationIDFromContext_Missing(t *testing.T) {
	if _, ok := GetOperationIDFromContext(context.Background()); ok {
		t.Fatal("expected ok=false for empty context")
	}
}

func TestGetOperationIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), OperationIDCtxKey, 42)
	if _, ok := GetOperationIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for non-string value")
	}
}

func TestGetOperationIDFromContext_Empty(t *testing.T) {
	ctx := WithOperationID(context.Background(), "")
	if _, ok := GetOperationIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty id")
	}
}
