package rules

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/wricardo/mcp-training/monopoly/game/engine"
	"github.com/wricardo/mcp-training/monopoly/game/service"
)

var (
	ErrRulesNotFound = errors.New("rule set not found")
	ErrInvalidRules  = errors.New("invalid rule set")
)

// Manager handles rule set loading and caching
type Manager struct {
	rulesDir     string
	defaultRules *engine.Rules
	cache        map[string]*engine.Rules
	mu           sync.RWMutex
}

// NewManager creates a new rules manager backed by a directory of JSON
// rule set files.
func NewManager(rulesDir string) (*Manager, error) {
	if _, err := os.Stat(rulesDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("rules directory does not exist: %s", rulesDir)
	}

	m := &Manager{
		rulesDir: rulesDir,
		cache:    make(map[string]*engine.Rules),
	}

	if err := m.loadDefaultRules(); err != nil {
		return nil, fmt.Errorf("failed to load default rules: %w", err)
	}
	return m, nil
}

// LoadRules loads a rule set by name
func (m *Manager) LoadRules(name string) (*engine.Rules, error) {
	m.mu.RLock()
	if rules, exists := m.cache[name]; exists {
		m.mu.RUnlock()
		return rules, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if rules, exists := m.cache[name]; exists {
		return rules, nil
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}
	path := filepath.Join(m.rulesDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrRulesNotFound
		}
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var rules engine.Rules
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	if err := engine.ValidateRules(&rules); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}

	m.cache[name] = &rules
	return &rules, nil
}

// ListRules returns information about all available rule sets
func (m *Manager) ListRules() ([]*service.RulesInfo, error) {
	entries, err := os.ReadDir(m.rulesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules directory: %w", err)
	}

	var infos []*service.RulesInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		rules, err := m.LoadRules(name)
		if err != nil {
			// Skip invalid rule sets
			continue
		}
		infos = append(infos, &service.RulesInfo{
			Filename:     entry.Name(),
			RulesID:      name,
			Name:         rules.Name,
			Description:  rules.Description,
			StartingCash: rules.StartingCash,
			GoSalary:     rules.GoSalary,
		})
	}
	return infos, nil
}

// GetDefault returns the default rule set
func (m *Manager) GetDefault() *engine.Rules {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultRules
}

// SetDefault sets the default rule set by name
func (m *Manager) SetDefault(name string) error {
	rules, err := m.LoadRules(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultRules = rules
	return nil
}

// RefreshCache reloads all cached rule sets from disk
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.cache = make(map[string]*engine.Rules)
	m.mu.Unlock()

	return m.loadDefaultRules()
}

// SaveRules saves a rule set to disk
func (m *Manager) SaveRules(name string, rules *engine.Rules) error {
	if err := engine.ValidateRules(rules); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}
	path := filepath.Join(m.rulesDir, filename)

	data, err := json.MarshalIndent(rules, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write rules file: %w", err)
	}

	m.mu.Lock()
	m.cache[name] = rules
	m.mu.Unlock()
	return nil
}

// loadDefaultRules picks classic.json when present, then the first valid
// rule set, then the builtin defaults.
func (m *Manager) loadDefaultRules() error {
	rules, err := m.LoadRules("classic")
	if err != nil {
		infos, listErr := m.ListRules()
		if listErr != nil || len(infos) == 0 {
			m.setDefault(engine.DefaultRules())
			return nil
		}
		rules, err = m.LoadRules(infos[0].RulesID)
		if err != nil {
			m.setDefault(engine.DefaultRules())
			return nil
		}
	}
	m.setDefault(rules)
	return nil
}

func (m *Manager) setDefault(rules *engine.Rules) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultRules = rules
}
