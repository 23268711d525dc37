// Package utility - Test cache in-memory.
package utility

import (
	"testing"
	"time"
)

func TestCache_SetGetDelete(t *testing.T) {
	cache := NewCache(time.Minute, time.Hour)

	if _, found := cache.Get("khoa"); found {
		t.Error("Cache mới không được chứa key nào")
	}

	cache.Set("khoa", "giatri")
	value, found := cache.Get("khoa")
	if !found {
		t.Fatal("Get phải tìm thấy key vừa Set")
	}
	if value.(string) != "giatri" {
		t.Errorf("Giá trị cache sai: got %v, want giatri", value)
	}

	cache.Delete("khoa")
	if _, found := cache.Get("khoa"); found {
		t.Error("Get sau Delete không được tìm thấy key")
	}
}

func TestCache_DeleteKeyKhongTonTai(t *testing.T) {
	cache := NewCache(time.Minute, time.Hour)
	// Không panic khi xóa key không tồn tại
	cache.Delete("khong-ton-tai")
}
