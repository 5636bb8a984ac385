package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// RegionRateConfig is a single region entry in the rates file.
type RegionRateConfig struct {
	BaseFee               float64 `mapstructure:"base_fee"`
	PerKgFee              float64 `mapstructure:"per_kg_fee"`
	FreeShippingThreshold float64 `mapstructure:"free_shipping_threshold"`
	MinDays               int     `mapstructure:"min_days"`
	MaxDays               int     `mapstructure:"max_days"`
}

// RatesFile is the document read from SHIPPING_RATES_FILE.
//
//	regions:
//	  southeast:
//	    base_fee: 20
//	    per_kg_fee: 1.2
//	    free_shipping_threshold: 800
//	    min_days: 2
//	    max_days: 5
type RatesFile struct {
	Regions map[string]RegionRateConfig `mapstructure:"regions"`
}

// LoadRates reads a rates file. The format is inferred from the extension
// (yaml, json and toml are accepted).
func LoadRates(file string) (*RatesFile, error) {
	v := viper.New()
	v.SetConfigFile(file)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading rates file %s: %w", file, err)
	}

	var rates RatesFile
	if err := v.Unmarshal(&rates); err != nil {
		return nil, fmt.Errorf("unable to decode rates file: %w", err)
	}

	if len(rates.Regions) == 0 {
		return nil, fmt.Errorf("rates file %s defines no regions", file)
	}

	return &rates, nil
}
