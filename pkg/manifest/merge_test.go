package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeEmptyOverlayIsIdentity(t *testing.T) {
	base := map[string]interface{}{
		"core": map[string]interface{}{
			"mise": map[string]interface{}{
				"node": map[string]interface{}{"version": "20"},
			},
		},
	}

	assert.Equal(t, base, Merge(base, nil))
	assert.Equal(t, base, Merge(base, map[string]interface{}{}))
}

func TestMergeIsIdempotent(t *testing.T) {
	base := map[string]interface{}{
		"core": map[string]interface{}{
			"common": map[string]interface{}{
				"git":  nil,
				"curl": nil,
			},
		},
	}
	overlay := map[string]interface{}{
		"core": map[string]interface{}{
			"common": map[string]interface{}{
				"jq": nil,
			},
		},
	}

	once := Merge(base, overlay)
	twice := Merge(once, overlay)

	assert.Equal(t, once, twice)
}

func TestMergeNestedMaps(t *testing.T) {
	base := map[string]interface{}{
		"core": map[string]interface{}{
			"mise": map[string]interface{}{
				"node": map[string]interface{}{"version": "20"},
				"go":   map[string]interface{}{"version": "1.22"},
			},
		},
	}
	overlay := map[string]interface{}{
		"core": map[string]interface{}{
			"mise": map[string]interface{}{
				"node": map[string]interface{}{"version": "22"},
			},
		},
	}

	merged := Merge(base, overlay)

	mise := SubMap(SubMap(merged, "core"), "mise")
	assert.Equal(t, map[string]interface{}{"version": "22"}, mise["node"])
	assert.Equal(t, map[string]interface{}{"version": "1.22"}, mise["go"])
}

func TestMergeListsReplaceWholesale(t *testing.T) {
	base := map[string]interface{}{
		"core": map[string]interface{}{
			"custom": map[string]interface{}{
				"kubectl": map[string]interface{}{
					"tags": []interface{}{"@skip-wsl", "@other"},
				},
			},
		},
	}
	overlay := map[string]interface{}{
		"core": map[string]interface{}{
			"custom": map[string]interface{}{
				"kubectl": map[string]interface{}{
					"tags": []interface{}{"@replaced"},
				},
			},
		},
	}

	merged := Merge(base, overlay)

	kubectl := SubMap(SubMap(SubMap(merged, "core"), "custom"), "kubectl")
	assert.Equal(t, []interface{}{"@replaced"}, kubectl["tags"])
}

func TestMergeScalarReplacesMap(t *testing.T) {
	base := map[string]interface{}{
		"key": map[string]interface{}{"nested": "value"},
	}
	overlay := map[string]interface{}{
		"key": "scalar",
	}

	assert.Equal(t, "scalar", Merge(base, overlay)["key"])
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := map[string]interface{}{
		"core": map[string]interface{}{
			"common": map[string]interface{}{"git": nil},
		},
	}
	overlay := map[string]interface{}{
		"core": map[string]interface{}{
			"common": map[string]interface{}{"jq": nil},
		},
	}

	_ = Merge(base, overlay)

	common := SubMap(SubMap(base, "core"), "common")
	assert.Len(t, common, 1)
	assert.Contains(t, common, "git")
}

func TestMergeAddsNewKeys(t *testing.T) {
	base := map[string]interface{}{
		"packs": map[string]interface{}{
			"python": map[string]interface{}{"description": "Python tooling"},
		},
	}
	overlay := map[string]interface{}{
		"packs": map[string]interface{}{
			"intranet": map[string]interface{}{"description": "Org internal tools"},
		},
	}

	merged := Merge(base, overlay)

	packs := SubMap(merged, "packs")
	assert.Len(t, packs, 2)
	assert.Contains(t, packs, "python")
	assert.Contains(t, packs, "intranet")
}
