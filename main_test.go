package main

import (
	"os"
	"testing"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}

	expectedVersion := "1.0.0"
	if Version != expectedVersion {
		t.Errorf("Expected version %s, got %s", expectedVersion, Version)
	}

	expectedAppName := "Monopoly Game Server"
	if AppName != expectedAppName {
		t.Errorf("Expected app name %s, got %s", expectedAppName, AppName)
	}
}

func TestGetRulesDirDefault(t *testing.T) {
	original, had := os.LookupEnv("RULES_DIR")
	defer func() {
		if had {
			os.Setenv("RULES_DIR", original)
		} else {
			os.Unsetenv("RULES_DIR")
		}
	}()

	os.Unsetenv("RULES_DIR")
	if got := getRulesDirDefault(); got != "configs" {
		t.Errorf("Expected default rules dir 'configs', got %q", got)
	}

	os.Setenv("RULES_DIR", "/tmp/custom-rules")
	if got := getRulesDirDefault(); got != "/tmp/custom-rules" {
		t.Errorf("Expected rules dir from env, got %q", got)
	}
}

func TestInitializeServices(t *testing.T) {
	// Test with default rules directory
	originalRulesDir := *rulesDir
	*rulesDir = "configs"
	defer func() { *rulesDir = originalRulesDir }()

	if _, err := os.Stat("configs"); os.IsNotExist(err) {
		t.Skip("Skipping test - configs directory not found")
	}

	gameService, err := initializeServices()
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	if gameService == nil {
		t.Fatal("Expected game service to be initialized")
	}
}

func TestInitializeServices_InvalidRulesDir(t *testing.T) {
	// Test with non-existent rules directory
	originalRulesDir := *rulesDir
	*rulesDir = "/non/existent/path"
	defer func() { *rulesDir = originalRulesDir }()

	_, err := initializeServices()
	if err == nil {
		t.Error("Expected error for non-existent rules directory")
	}
}

func TestFlagDefaults(t *testing.T) {
	// Test that flags have reasonable defaults
	if *port <= 0 || *port > 65535 {
		t.Errorf("Invalid default port: %d", *port)
	}

	if *host == "" {
		t.Error("Host should have a default value")
	}

	if *rulesDir == "" {
		t.Error("Rules directory should have a default value")
	}
}

// Note: We can't easily test main(), runHTTPServer(), and runStdioMCPWithInternalServer()
// without significant mocking or refactoring, as they start servers and block.
// These functions would be better tested in integration tests that start actual servers
// and test their endpoints.

func TestServiceInitialization(t *testing.T) {
	// Test that we can initialize services without panicking
	originalRulesDir := *rulesDir
	*rulesDir = "configs"
	defer func() { *rulesDir = originalRulesDir }()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Service initialization panicked: %v", r)
		}
	}()

	if _, err := os.Stat("configs"); os.IsNotExist(err) {
		t.Skip("Skipping test - configs directory not found")
	}

	_, err := initializeServices()
	if err != nil {
		// This is expected if rule files are missing, but shouldn't panic
		t.Logf("Service initialization failed as expected: %v", err)
	}
}
