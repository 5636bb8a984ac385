package service

import (
	"fmt"
	"strings"

	"frete-service/internal/core/config"
	"frete-service/internal/features/shipping/domain"

	"github.com/shopspring/decimal"
)

// BuildRateTable applies the regions of a rates file on top of the built-in table.
// Regions missing from the file keep their built-in rates.
func BuildRateTable(file *config.RatesFile) (domain.RateTable, error) {
	table := domain.DefaultRateTable()
	if file == nil {
		return table, nil
	}

	for name, entry := range file.Regions {
		region := domain.Region(strings.ToLower(strings.TrimSpace(name)))
		if !region.IsValid() {
			return nil, fmt.Errorf("unknown region %q in rates file", name)
		}

		table[region] = domain.RegionRates{
			BaseFee:               decimal.NewFromFloat(entry.BaseFee),
			PerKgFee:              decimal.NewFromFloat(entry.PerKgFee),
			FreeShippingThreshold: decimal.NewFromFloat(entry.FreeShippingThreshold),
			MinDays:               entry.MinDays,
			MaxDays:               entry.MaxDays,
		}
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
