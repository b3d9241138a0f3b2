// Package config - Test NewConfig với file env truyền tường minh.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfig_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	content := "MONGODB_CONNECTION_URI=mongodb://localhost:27017\n" +
		"MONGODB_DBNAME=metro_waste_test\n" +
		"TRUCK_CAPACITY=500\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatalf("không ghi được file env: %v", err)
	}

	cfg := NewConfig(envFile)
	if cfg == nil {
		t.Fatal("file env tường minh phải được load, got nil config")
	}
	if cfg.MongoDB_DBName != "metro_waste_test" {
		t.Errorf("DBName phải đọc từ file được truyền, got %q", cfg.MongoDB_DBName)
	}
	if cfg.TruckCapacity != 500 {
		t.Errorf("TRUCK_CAPACITY phải đọc từ file được truyền, got %d", cfg.TruckCapacity)
	}
	if cfg.StaffPerTruck != 2 {
		t.Errorf("STAFF_PER_TRUCK không có trong file phải lấy default 2, got %d", cfg.StaffPerTruck)
	}
}
