package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/remessa-dev/remessa/internal/model"
)

// Config represents the top-level remessa.yaml configuration.
type Config struct {
	Payer  PayerConfig  `yaml:"payer"`
	Output OutputConfig `yaml:"output"`
}

// PayerConfig identifies the paying company toward the bank.
type PayerConfig struct {
	Name      string        `yaml:"name"`
	TaxID     string        `yaml:"tax_id"`
	BankCode  string        `yaml:"bank_code"`
	Agency    string        `yaml:"agency"`  // "1234-5" form, digit embedded
	Account   string        `yaml:"account"` // "123456-7" form, digit embedded
	Agreement string        `yaml:"agreement"`
	Address   AddressConfig `yaml:"address"`
}

// AddressConfig is the payer address carried in every batch header.
type AddressConfig struct {
	Street     string `yaml:"street"`
	Number     string `yaml:"number"`
	Complement string `yaml:"complement,omitempty"`
	City       string `yaml:"city"`
	State      string `yaml:"state"`
	Zip        string `yaml:"zip"`
}

// OutputConfig controls where generated files and counters live,
// relative to the config file's directory.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	CounterFile string `yaml:"counter_file"`
}

// Load reads a remessa.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new working
// directory.
func Default(payerName string) *Config {
	return &Config{
		Payer: PayerConfig{
			Name:     payerName,
			BankCode: "001",
		},
		Output: OutputConfig{
			Dir:         "out",
			CounterFile: "counters.yaml",
		},
	}
}

// PayerProfile converts the config into the encoder's payer record. The
// payment date is a per-run input and stays zero here.
func (c *Config) PayerProfile() model.PayerProfile {
	return model.PayerProfile{
		Name:      c.Payer.Name,
		TaxID:     c.Payer.TaxID,
		BankCode:  c.Payer.BankCode,
		Agency:    c.Payer.Agency,
		Account:   c.Payer.Account,
		Agreement: c.Payer.Agreement,
		Address: model.Address{
			Street:     c.Payer.Address.Street,
			Number:     c.Payer.Address.Number,
			Complement: c.Payer.Address.Complement,
			City:       c.Payer.Address.City,
			State:      c.Payer.Address.State,
			Zip:        c.Payer.Address.Zip,
		},
	}
}
