package llm

import (
	"fmt"
	"neuraledit-ai/internal/constants"
	"sync"
)

type Manager struct {
	clients map[string]Client
	mu      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]Client),
	}
}

// RegisterClient builds a client for config.Provider and stores it under name.
func (m *Manager) RegisterClient(name string, config Config) error {
	var client Client
	var err error

	switch config.Provider {
	case constants.Gemini:
		client, err = NewGeminiClient(config)
	case constants.OpenAI:
		client, err = NewOpenAIClient(config)
	default:
		return fmt.Errorf("unsupported LLM provider: %s", config.Provider)
	}

	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	m.Register(name, client)
	return nil
}

// Register stores an already constructed client under name, replacing any previous one.
func (m *Manager) Register(name string, client Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[name] = client
}

func (m *Manager) GetClient(name string) (Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	client, exists := m.clients[name]
	if !exists {
		return nil, fmt.Errorf("LLM client not found: %s", name)
	}

	return client, nil
}

func (m *Manager) RemoveClient(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.clients, name)
}

// Close releases clients that hold transport resources.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for name, client := range m.clients {
		closer, ok := client.(interface{ Close() error })
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close LLM client %s: %w", name, err)
		}
	}
	return firstErr
}
