package models

// Clinical domains the catalog questions are grouped under. The set is fixed
// per deployment; new domains require a catalog reseed.
const (
	DomainDepression   = "depression"
	DomainAnxiety      = "anxiety"
	DomainMania        = "mania"
	DomainSubstanceUse = "substance_use"
)

// DomainScoringOrder fixes the iteration order used when mapping domain
// scores to triggered assessments so the result list is deterministic.
var DomainScoringOrder = []string{
	DomainDepression,
	DomainAnxiety,
	DomainMania,
	DomainSubstanceUse,
}
