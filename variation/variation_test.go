package variation

import "testing"

func TestExpandChoonNoMark(t *testing.T) {
	if got := ExpandChoon("たべる"); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestExpandChoonFiveDistinctVariants(t *testing.T) {
	variants := ExpandChoon("ケーキ")
	if len(variants) != 5 {
		t.Fatalf("got %d variants, want 5", len(variants))
	}
	seen := map[string]bool{}
	for _, v := range variants {
		if seen[v] {
			t.Errorf("duplicate variant %q", v)
		}
		seen[v] = true
	}
	want := []string{"ケあキ", "ケいキ", "ケうキ", "ケえキ", "ケおキ"}
	for i, w := range want {
		if variants[i] != w {
			t.Errorf("variants[%d] = %q, want %q", i, variants[i], w)
		}
	}
}

func TestExpandChoonOnlyFirstOccurrence(t *testing.T) {
	variants := ExpandChoon("ラーメーン")
	if len(variants) != 5 {
		t.Fatalf("got %d variants, want 5", len(variants))
	}
	if variants[0] != "ラあメーン" {
		t.Errorf("got %q, want ラあメーン", variants[0])
	}
}

func TestKyuujitaiToShinjitai(t *testing.T) {
	got := KyuujitaiToShinjitai("舊體國")
	want := "旧体国"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestKyuujitaiUnchangedReturnsSameText(t *testing.T) {
	in := "今日は晴れ"
	got := KyuujitaiToShinjitai(in)
	if got != in {
		t.Errorf("got %q, want unchanged %q", got, in)
	}
}
