package match

import (
	"testing"

	"github.com/eridgd/tentoku/model"
)

func entryWithPOS(tags ...string) model.WordEntry {
	return model.WordEntry{Senses: []model.Sense{{POSTags: tags}}}
}

func TestEntryMatchesTypeIchidan(t *testing.T) {
	entry := entryWithPOS("v1")
	if !EntryMatchesType(entry, model.IchidanVerb) {
		t.Error("expected v1 entry to match IchidanVerb")
	}
	if EntryMatchesType(entry, model.GodanFamily) {
		t.Error("did not expect v1 entry to match GodanFamily")
	}
}

func TestEntryMatchesTypeGodanRowSpecific(t *testing.T) {
	entry := entryWithPOS("v5u")
	if !EntryMatchesType(entry, model.GodanUVerb) {
		t.Error("expected v5u entry to match GodanUVerb via GodanFamily")
	}
}

func TestEntryMatchesTypeIAdj(t *testing.T) {
	entry := entryWithPOS("adj-i")
	if !EntryMatchesType(entry, model.IAdj) {
		t.Error("expected adj-i entry to match IAdj")
	}
	if EntryMatchesType(entry, model.IchidanVerb) {
		t.Error("did not expect adj-i entry to match IchidanVerb")
	}
}

func TestEntryMatchesTypeSuruAndSpecialSuru(t *testing.T) {
	vsS := entryWithPOS("vs-s")
	if !EntryMatchesType(vsS, model.SuruVerb) {
		t.Error("expected vs-s entry to match SuruVerb")
	}
	if !EntryMatchesType(vsS, model.SpecialSuruVerb) {
		t.Error("expected vs-s entry to match SpecialSuruVerb")
	}
}

func TestEntryMatchesTypeNounVS(t *testing.T) {
	entry := entryWithPOS("vs", "n")
	if !EntryMatchesType(entry, model.NounVS) {
		t.Error("expected vs entry to match NounVS")
	}
}

func TestEntryMatchesTypeExpressionOnlyMatchesAnyVerbType(t *testing.T) {
	entry := entryWithPOS("exp")
	if !EntryMatchesType(entry, model.GodanFamily) {
		t.Error("expected bare exp entry to match any verb word-type")
	}
	if EntryMatchesType(entry, model.IAdj) {
		t.Error("did not expect a bare exp entry to match IAdj")
	}
}

func TestEntryMatchesTypeNoPOSTagsNeverMatches(t *testing.T) {
	entry := model.WordEntry{Senses: []model.Sense{{}}}
	if EntryMatchesType(entry, model.All) {
		t.Error("expected an entry with no POS tags to never match")
	}
}

func TestEntryMatchesTypeUnrelatedTagDoesNotMatch(t *testing.T) {
	entry := entryWithPOS("n")
	if EntryMatchesType(entry, model.IchidanVerb) {
		t.Error("did not expect a bare noun entry to match IchidanVerb")
	}
}
