package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiseaseByKeyKnown(t *testing.T) {
	info := DiseaseByKey("flu")
	assert.Equal(t, "Influenza (Flu)", info.DisplayName)
	assert.Equal(t, SeverityModerate, info.Severity)
	assert.NotEmpty(t, info.Actions)
}

func TestDiseaseByKeyUnknownGetsFallback(t *testing.T) {
	info := DiseaseByKey("dragon_pox")
	assert.Equal(t, "Dragon Pox", info.DisplayName)
	assert.Equal(t, defaultDescription, info.Description)
	assert.Equal(t, defaultActions, info.Actions)
}

func TestRuleTableDiseasesAreCataloged(t *testing.T) {
	for key, entries := range ruleTable {
		for _, e := range entries {
			_, ok := catalog[e.disease]
			assert.True(t, ok, "symptom %q references uncataloged disease %q", key, e.disease)
		}
	}
}

func TestArchetypeDiseasesAreCataloged(t *testing.T) {
	for _, a := range archetypes {
		_, ok := catalog[a.disease]
		assert.True(t, ok, "archetype %q not in catalog", a.disease)
	}
}
