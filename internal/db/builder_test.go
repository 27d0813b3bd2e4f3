package db

import (
	"strings"
	"testing"
)

func TestIndexBuilderBuildsCandidateSchema(t *testing.T) {
	def, err := NewIndex("cvdex-candidates").
		Prefix("cvdex:cand:").
		TagWithOpts("skills", ",", false).
		TagWithOpts("skills_normalized", ",", false).
		Tag("location_normalized").
		Numeric("years_experience").
		Numeric("upload_date").
		Text("__content").
		VectorHNSW("vector", 1536, DistanceCosine, 16, 200).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(def.Fields) != 7 {
		t.Fatalf("fields = %d, want 7", len(def.Fields))
	}
	s := def.String()
	for _, want := range []string{"FT.CREATE cvdex-candidates", "PREFIX cvdex:cand:", "vector VECTOR HNSW"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestIndexDefinitionValidate(t *testing.T) {
	cases := []struct {
		name    string
		def     IndexDefinition
		wantErr bool
	}{
		{"empty name", IndexDefinition{Fields: []IndexField{{Name: "f", Type: IndexFieldTag}}}, true},
		{"bad name", IndexDefinition{Name: "bad name", Fields: []IndexField{{Name: "f", Type: IndexFieldTag}}}, true},
		{"no fields", IndexDefinition{Name: "idx"}, true},
		{"duplicate field", IndexDefinition{Name: "idx", Fields: []IndexField{
			{Name: "f", Type: IndexFieldTag}, {Name: "f", Type: IndexFieldText},
		}}, true},
		{"vector without dim", IndexDefinition{Name: "idx", Fields: []IndexField{
			{Name: "v", Type: IndexFieldVector, VectorAlgo: VectorHNSW},
		}}, true},
		{"valid", IndexDefinition{Name: "idx", Fields: []IndexField{
			{Name: "v", Type: IndexFieldVector, VectorAlgo: VectorHNSW, VectorDim: 8, VectorDistance: DistanceCosine},
		}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.def.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestIndexBuilderVectorFlat(t *testing.T) {
	def := NewIndex("cvdex-flat").
		Prefix("cvdex:cand:").
		VectorFlat("vector", 1536, DistanceCosine, 512).
		MustBuild()

	f := def.Fields[0]
	if f.VectorAlgo != VectorFlat || f.VectorDim != 1536 || f.VectorBlockSize != 512 {
		t.Fatalf("flat vector field = %+v", f)
	}
}

func TestIndexBuilderMustBuildPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for index without fields")
		}
	}()
	NewIndex("cvdex-empty").MustBuild()
}
