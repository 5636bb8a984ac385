package domain

import "strings"

// Region is one of the five Brazilian macro-regions used as the pricing key.
type Region string

const (
	// RegionNorth covers AC, AP, AM, PA, RO, RR and TO.
	RegionNorth Region = "north"
	// RegionNortheast covers AL, BA, CE, MA, PB, PE, PI, RN and SE.
	RegionNortheast Region = "northeast"
	// RegionCenterWest covers DF, GO, MT and MS.
	RegionCenterWest Region = "centerwest"
	// RegionSoutheast covers ES, MG, RJ and SP.
	RegionSoutheast Region = "southeast"
	// RegionSouth covers PR, RS and SC.
	RegionSouth Region = "south"
)

// DefaultRegion is returned for any state code that is not recognised.
const DefaultRegion = RegionSoutheast

// Regions returns every region in a stable order.
func Regions() []Region {
	return []Region{RegionNorth, RegionNortheast, RegionCenterWest, RegionSoutheast, RegionSouth}
}

// States returns the 27 federative unit codes (26 states plus DF).
func States() []string {
	return []string{
		"AC", "AP", "AM", "PA", "RO", "RR", "TO",
		"AL", "BA", "CE", "MA", "PB", "PE", "PI", "RN", "SE",
		"DF", "GO", "MT", "MS",
		"ES", "MG", "RJ", "SP",
		"PR", "RS", "SC",
	}
}

// ResolveRegion maps a two-letter state code to its region. Matching ignores case
// and surrounding whitespace. Unknown codes fall through to DefaultRegion.
func ResolveRegion(stateCode string) Region {
	switch strings.ToUpper(strings.TrimSpace(stateCode)) {
	case "AC", "AP", "AM", "PA", "RO", "RR", "TO":
		return RegionNorth
	case "AL", "BA", "CE", "MA", "PB", "PE", "PI", "RN", "SE":
		return RegionNortheast
	case "DF", "GO", "MT", "MS":
		return RegionCenterWest
	case "ES", "MG", "RJ", "SP":
		return RegionSoutheast
	case "PR", "RS", "SC":
		return RegionSouth
	default:
		return DefaultRegion
	}
}

// IsValid reports whether r is one of the five known regions.
func (r Region) IsValid() bool {
	switch r {
	case RegionNorth, RegionNortheast, RegionCenterWest, RegionSoutheast, RegionSouth:
		return true
	}
	return false
}
