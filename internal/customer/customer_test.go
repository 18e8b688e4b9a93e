package customer

import (
	"errors"
	"testing"
)

func validRecord() Record {
	return Record{
		Name:            "Ali",
		Age:             28,
		Gender:          GenderMale,
		Interests:       []string{"Gaming"},
		PurchaseHistory: []string{"Laptop"},
		SentimentScore:  0.8,
		EngagementScore: 85,
		SocialActivity:  SocialHigh,
	}
}

func TestRecord_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Record)
		wantField string
	}{
		{
			name:   "valid record",
			mutate: func(r *Record) {},
		},
		{
			name: "empty slices are valid",
			mutate: func(r *Record) {
				r.Interests = []string{}
				r.PurchaseHistory = []string{}
			},
		},
		{
			name:      "empty name",
			mutate:    func(r *Record) { r.Name = "" },
			wantField: "name",
		},
		{
			name:      "negative age",
			mutate:    func(r *Record) { r.Age = -1 },
			wantField: "age",
		},
		{
			name:      "unknown gender",
			mutate:    func(r *Record) { r.Gender = "Other" },
			wantField: "gender",
		},
		{
			name:      "missing interests",
			mutate:    func(r *Record) { r.Interests = nil },
			wantField: "interests",
		},
		{
			name:      "missing purchase history",
			mutate:    func(r *Record) { r.PurchaseHistory = nil },
			wantField: "purchase_history",
		},
		{
			name:      "unknown social activity",
			mutate:    func(r *Record) { r.SocialActivity = "Sometimes" },
			wantField: "social_media_activity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(&r)
			err := r.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var malformed *MalformedRecordError
			if !errors.As(err, &malformed) {
				t.Fatalf("Validate() error = %v, want *MalformedRecordError", err)
			}
			if malformed.Field != tt.wantField {
				t.Errorf("MalformedRecordError.Field = %q, want %q", malformed.Field, tt.wantField)
			}
		})
	}
}

func TestRecord_HasPurchased(t *testing.T) {
	r := validRecord()

	if !r.HasPurchased("Laptop") {
		t.Error("HasPurchased(Laptop) = false, want true")
	}
	if r.HasPurchased("Camera") {
		t.Error("HasPurchased(Camera) = true, want false")
	}
	if r.HasPurchased("laptop") {
		t.Error("HasPurchased(laptop) = true, purchase match is exact")
	}
}

func TestNewPopulation(t *testing.T) {
	a := validRecord()
	b := validRecord()
	b.Name = "Bina"
	b.Gender = GenderFemale

	pop, err := NewPopulation([]Record{a, b})
	if err != nil {
		t.Fatalf("NewPopulation() error = %v", err)
	}

	if pop.Len() != 2 {
		t.Errorf("Len() = %d, want 2", pop.Len())
	}
	if !pop.Contains("Bina") {
		t.Error("Contains(Bina) = false, want true")
	}
	if pop.At(1).Name != "Bina" {
		t.Errorf("At(1).Name = %q, want Bina", pop.At(1).Name)
	}

	idx, err := pop.IndexOf("Ali")
	if err != nil {
		t.Fatalf("IndexOf(Ali) error = %v", err)
	}
	if idx != 0 {
		t.Errorf("IndexOf(Ali) = %d, want 0", idx)
	}
}

func TestNewPopulation_DuplicateName(t *testing.T) {
	a := validRecord()
	b := validRecord()

	_, err := NewPopulation([]Record{a, b})

	var malformed *MalformedRecordError
	if !errors.As(err, &malformed) {
		t.Fatalf("NewPopulation() error = %v, want *MalformedRecordError", err)
	}
}

func TestNewPopulation_InvalidRecord(t *testing.T) {
	a := validRecord()
	a.Interests = nil

	if _, err := NewPopulation([]Record{a}); err == nil {
		t.Fatal("NewPopulation() error = nil, want validation error")
	}
}

func TestPopulation_IndexOf_NotFound(t *testing.T) {
	pop, err := NewPopulation([]Record{validRecord()})
	if err != nil {
		t.Fatalf("NewPopulation() error = %v", err)
	}

	_, err = pop.IndexOf("Ghost")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("IndexOf(Ghost) error = %v, want *NotFoundError", err)
	}
	if nf.Name != "Ghost" {
		t.Errorf("NotFoundError.Name = %q, want Ghost", nf.Name)
	}
}
