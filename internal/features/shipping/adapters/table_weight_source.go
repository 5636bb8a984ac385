package adapters

import (
	"context"

	"frete-service/internal/features/shipping/domain"
	"frete-service/internal/features/shipping/ports"
)

// TableWeightSource serves weights from an in-memory table built at startup.
type TableWeightSource struct {
	table domain.WeightTable
}

// NewTableWeightSource copies table so later changes to it are not observed.
func NewTableWeightSource(table domain.WeightTable) *TableWeightSource {
	own := make(domain.WeightTable, len(table))
	for id, w := range table {
		own[id] = w
	}
	return &TableWeightSource{table: own}
}

// Kind implements ports.WeightSource.
func (s *TableWeightSource) Kind() ports.WeightSourceKind {
	return ports.WeightSourceTable
}

// GetWeights implements ports.WeightSource.
func (s *TableWeightSource) GetWeights(_ context.Context, productIDs []int) (map[int]float64, error) {
	out := make(map[int]float64, len(productIDs))
	for _, id := range productIDs {
		if w, ok := s.table.Lookup(id); ok {
			out[id] = w
		}
	}
	return out, nil
}
