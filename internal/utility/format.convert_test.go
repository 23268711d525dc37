// Package utility - Test các hàm chuyển đổi ObjectID và số.
package utility

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIsValidObjectID(t *testing.T) {
	valid := primitive.NewObjectID().Hex()
	if !IsValidObjectID(valid) {
		t.Errorf("IsValidObjectID(%q) phải trả về true", valid)
	}
	for _, invalid := range []string{"", "abc", "zzzzzzzzzzzzzzzzzzzzzzzz", "123"} {
		if IsValidObjectID(invalid) {
			t.Errorf("IsValidObjectID(%q) phải trả về false", invalid)
		}
	}
}

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	if got := String2ObjectID(id.Hex()); got != id {
		t.Errorf("String2ObjectID round trip sai: got %v, want %v", got, id)
	}
	if got := String2ObjectID("khong-hop-le"); got != primitive.NilObjectID {
		t.Errorf("Chuỗi không hợp lệ phải trả về NilObjectID, got %v", got)
	}
}

func TestP2Int64(t *testing.T) {
	if got := P2Int64("3"); got != 3 {
		t.Errorf("P2Int64 với chuỗi sai: got %d, want 3", got)
	}
	if got := P2Int64(" 15 "); got != 15 {
		t.Errorf("P2Int64 phải trim khoảng trắng: got %d, want 15", got)
	}
	if got := P2Int64(json.Number("7")); got != 7 {
		t.Errorf("P2Int64 với json.Number sai: got %d, want 7", got)
	}
	if got := P2Int64("abc"); got != 0 {
		t.Errorf("P2Int64 với chuỗi rác phải trả về 0, got %d", got)
	}
	if got := P2Int64(nil); got != 0 {
		t.Errorf("P2Int64 với nil phải trả về 0, got %d", got)
	}
	if got := P2Int64(int64(9)); got != 9 {
		t.Errorf("P2Int64 với int64 sai: got %d, want 9", got)
	}
}

func TestP2Float64(t *testing.T) {
	if got := P2Float64("5.5"); got != 5.5 {
		t.Errorf("P2Float64 với chuỗi sai: got %v, want 5.5", got)
	}
	if got := P2Float64(json.Number("2.25")); got != 2.25 {
		t.Errorf("P2Float64 với json.Number sai: got %v, want 2.25", got)
	}
	if got := P2Float64("xyz"); got != 0 {
		t.Errorf("P2Float64 với chuỗi rác phải trả về 0, got %v", got)
	}
}
