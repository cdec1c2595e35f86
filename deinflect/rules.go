package deinflect

import "github.com/eridgd/tentoku/model"

// godanRow describes the conjugation forms of a single Godan verb row
// (its dictionary-form ending kana and derived stems), used by
// buildGodanRules to generate the per-row rule set.
type godanRow struct {
	wordType   model.WordType
	dictEnding string // う/く/ぐ/す/つ/ぬ/ぶ/む/る
	masuStem   string // い/き/ぎ/し/ち/に/び/み/り (also the -i row mora)
	teTa       string // って/いて/いで/して/って/んで/んで/んで/って (also the ta-form base minus final た/だ)
	teTaVoiced bool   // true when the -te/-ta form ends in で/だ (the ぐ row and the nasal rows)
	negBase    string // わ/か/が/さ/た/な/ば/ま/ら (the -a row mora negation attaches to)
	potential  string // える/ける/げる/せる/てる/ねる/べる/める/れる
	volitional string // おう/こう/ごう/そう/とう/のう/ぼう/もう/ろう
	imperative string // え/け/げ/せ/て/ね/べ/め/れ (also the -ba base)
}

var godanRows = []godanRow{
	{model.GodanUVerb, "う", "い", "って", false, "わ", "える", "おう", "え"},
	{model.GodanTsuVerb, "つ", "ち", "って", false, "た", "てる", "とう", "て"},
	{model.GodanRuVerb, "る", "り", "って", false, "ら", "れる", "ろう", "れ"},
	{model.GodanKuVerb, "く", "き", "いて", false, "か", "ける", "こう", "け"},
	{model.GodanGuVerb, "ぐ", "ぎ", "いで", true, "が", "げる", "ごう", "げ"},
	{model.GodanSuVerb, "す", "し", "して", false, "さ", "せる", "そう", "せ"},
	{model.GodanNuVerb, "ぬ", "に", "んで", true, "な", "ねる", "のう", "ね"},
	{model.GodanBuVerb, "ぶ", "び", "んで", true, "ば", "べる", "ぼう", "べ"},
	{model.GodanMuVerb, "む", "み", "んで", true, "ま", "める", "もう", "め"},
}

func r(reasons ...model.Reason) []model.Reason { return reasons }

func rule(from, to string, fromType, toType model.WordType, reasons []model.Reason) model.DeinflectRule {
	return model.DeinflectRule{From: from, To: to, FromType: fromType, ToType: toType, Reasons: reasons}
}

// buildGodanRules generates the direct (one-step, terminal) rules for
// every Godan row plus the row-disambiguation forwarding rules that
// recognise a masu-stem or te/ta-stem's final kana and reconstruct the
// corresponding dictionary-form ending.
func buildGodanRules() []model.DeinflectRule {
	var rules []model.DeinflectRule

	for _, row := range godanRows {
		teStemEnding := dropLastRune(row.teTa)
		taForm := teStemEnding + voicedTa(row.teTaVoiced)
		rules = append(rules,
			rule(row.masuStem+"ます", row.dictEnding, model.All, row.wordType, r(model.Polite)),
			rule(row.masuStem+"ました", row.dictEnding, model.All, row.wordType, r(model.PolitePast)),
			rule(row.masuStem+"ません", row.dictEnding, model.All, row.wordType, r(model.PoliteNegative)),
			rule(row.masuStem+"ませんでした", row.dictEnding, model.All, row.wordType, r(model.PoliteNegativePast)),
			rule(row.masuStem+"たい", row.dictEnding, model.All, row.wordType, r(model.Tai)),
			rule(row.masuStem+"そう", row.dictEnding, model.All, row.wordType, r(model.Sou)),
			rule(row.masuStem+"ながら", row.dictEnding, model.All, row.wordType, r(model.Nagara)),
			rule(row.masuStem+"なさい", row.dictEnding, model.All, row.wordType, r(model.Nasai)),
			rule(row.masuStem+"やすい", row.dictEnding, model.All, row.wordType, r(model.Yasui)),
			rule(row.masuStem+"にくい", row.dictEnding, model.All, row.wordType, r(model.Nikui)),
			rule(row.masuStem+"がる", row.dictEnding, model.All, row.wordType, r(model.Garu)),
			rule(row.masuStem+"ましょう", row.dictEnding, model.All, row.wordType, r(model.Polite, model.Volitional)),
			rule(row.teTa, row.dictEnding, model.All, row.wordType, r(model.Te)),
			rule(taForm, row.dictEnding, model.All, row.wordType, r(model.Past)),
			rule(taForm+"ら", row.dictEnding, model.All, row.wordType, r(model.Tara)),
			rule(taForm+"り", row.dictEnding, model.All, row.wordType, r(model.Ki2)),
			rule(row.negBase+"ない", row.dictEnding, model.All, row.wordType, r(model.Negative)),
			rule(row.negBase+"なかった", row.dictEnding, model.All, row.wordType, r(model.NegativePast)),
			rule(row.negBase+"なければ", row.dictEnding, model.All, row.wordType, r(model.Nakereba)),
			rule(row.negBase+"なきゃ", row.dictEnding, model.All, row.wordType, r(model.Nakya)),
			rule(row.negBase+"ないと", row.dictEnding, model.All, row.wordType, r(model.Naito)),
			rule(row.negBase+"ないで", row.dictEnding, model.All, row.wordType, r(model.Naide)),
			rule(row.negBase+"ず", row.dictEnding, model.All, row.wordType, r(model.Zu)),
			rule(row.negBase+"ぬ", row.dictEnding, model.All, row.wordType, r(model.Nu)),
			rule(row.volitional, row.dictEnding, model.All, row.wordType, r(model.Volitional)),
			rule(row.imperative, row.dictEnding, model.All, row.wordType, r(model.Imperative)),
			rule(row.imperative+"ば", row.dictEnding, model.All, row.wordType, r(model.Ba)),
			rule(row.dictEnding+"な", row.dictEnding, model.All, row.wordType, r(model.ImperativeNegative)),
			rule(row.dictEnding+"だろう", row.dictEnding, model.All, row.wordType, r(model.Darou)),
			rule(row.dictEnding+"でしょう", row.dictEnding, model.All, row.wordType, r(model.Deshou)),
			rule(row.dictEnding+"らしい", row.dictEnding, model.All, row.wordType, r(model.Rashii)),
			rule(row.dictEnding+"そうだ", row.dictEnding, model.All, row.wordType, r(model.Souda)),
			rule(row.dictEnding+"ようだ", row.dictEnding, model.All, row.wordType, r(model.Youda)),
			rule(row.dictEnding+"みたい", row.dictEnding, model.All, row.wordType, r(model.Mitai)),
			rule(chauForm(row), row.dictEnding, model.All, row.wordType, r(model.Chau)),
			rule(tokuForm(row), row.dictEnding, model.All, row.wordType, r(model.Toku)),
		)

		// Potential and passive/causative-passive chain entirely through
		// the Ichidan-shaped intermediate forms (える/える.../られる), so
		// only the final terminal rule needs to name the Godan row; see
		// buildIchidanRules for the shared られる/させる machinery.
		rules = append(rules,
			rule(row.potential, row.dictEnding, model.IchidanVerb, row.wordType, r(model.Potential)),
			rule(row.negBase+"れる", row.dictEnding, model.IchidanVerb, row.wordType, r(model.PotentialOrPassive)),
			rule(row.negBase+"せる", row.dictEnding, model.IchidanVerb, row.wordType, r(model.Causative)),
			rule(row.negBase+"される", row.dictEnding, model.IchidanVerb, row.wordType, r(model.CausativePassive)),
		)

		// Masu-stem row disambiguation: forwards a StemMasu candidate
		// (built by the shared rules in buildIchidanRules, which strip
		// ます/ました/... down to a bare stem) onto this row's true
		// dictionary ending, alongside the engine's generic Ichidan
		// stem-forwarding step, which appends a bare "る". Reasons are empty: this merely reclassifies
		// the type, it records no new grammatical step.
		rules = append(rules, rule(row.masuStem, row.dictEnding, model.StemMasu, row.wordType, nil))

		// Te/ta-stem row disambiguation for the "~ている"/"~ていた" and
		// "~ちゃう"/"~とく" families, whose residual stem (after the shared
		// rules strip "ている"/"でいる"/"ちゃう"/... to a te/ta stem) still
		// ends in this row's te/ta-form consonant.
		if row.teTaVoiced {
			rules = append(rules, rule(teStemEnding, row.dictEnding, model.StemDaDe, row.wordType, nil))
		} else {
			rules = append(rules, rule(teStemEnding, row.dictEnding, model.StemTaTe, row.wordType, nil))
		}
	}

	return rules
}

func voicedTa(voiced bool) string {
	if voiced {
		return "だ"
	}
	return "た"
}

// dropLastRune returns s with its final code point removed.
func dropLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}

func chauForm(row godanRow) string {
	stem := dropLastRune(row.teTa)
	if row.teTaVoiced {
		return stem + "じゃう"
	}
	return stem + "ちゃう"
}

func tokuForm(row godanRow) string {
	stem := dropLastRune(row.teTa)
	if row.teTaVoiced {
		return stem + "どく"
	}
	return stem + "とく"
}

// buildIchidanRules generates the rules shared by every verb whose
// masu/te/ta/nai stem is identical to its bare dictionary-minus-る form:
// Ichidan verbs (食べる), 来る, and the ～ている/～ちゃう/～とく
// auxiliary forms. These rules feed the engine's generic stem-forwarding
// mechanism rather than naming a row directly.
func buildIchidanRules() []model.DeinflectRule {
	ichiKuru := model.IchidanVerb | model.KuruVerb
	return []model.DeinflectRule{
		rule("ます", "", model.All, model.StemMasu, r(model.Polite)),
		rule("ました", "", model.All, model.StemMasu, r(model.PolitePast)),
		rule("ません", "", model.All, model.StemMasu, r(model.PoliteNegative)),
		rule("ませんでした", "", model.All, model.StemMasu, r(model.PoliteNegativePast)),
		rule("たい", "", model.All, model.StemMasu, r(model.Tai)),
		rule("そう", "", model.All, model.StemMasu, r(model.Sou)),
		rule("ながら", "", model.All, model.StemMasu, r(model.Nagara)),
		rule("なさい", "", model.All, model.StemMasu, r(model.Nasai)),
		rule("やすい", "", model.All, model.StemMasu, r(model.Yasui)),
		rule("にくい", "", model.All, model.StemMasu, r(model.Nikui)),
		rule("ましょう", "", model.All, model.StemMasu, r(model.Polite, model.Volitional)),

		rule("て", "", model.All, model.StemTaTe, r(model.Te)),
		rule("た", "", model.All, model.StemTaTe, r(model.Past)),
		rule("たら", "", model.All, model.StemTaTe, r(model.Tara)),
		rule("たり", "", model.All, model.StemTaTe, r(model.Ki2)),
		rule("ている", "", model.All, model.StemTaTe, r(model.Continuous)),
		rule("ていた", "", model.All, model.StemTaTe, r(model.ContinuousPast)),
		rule("でいる", "", model.All, model.StemDaDe, r(model.Continuous)),
		rule("でいた", "", model.All, model.StemDaDe, r(model.ContinuousPast)),
		rule("ちゃう", "", model.All, model.StemTaTe, r(model.Chau)),
		rule("じゃう", "", model.All, model.StemDaDe, r(model.Chau)),
		rule("とく", "", model.All, model.StemTaTe, r(model.Toku)),
		rule("どく", "", model.All, model.StemDaDe, r(model.Toku)),

		rule("ない", "", model.All, model.StemIrrealis, r(model.Negative)),
		rule("なかった", "", model.All, model.StemIrrealis, r(model.NegativePast)),
		rule("なければ", "", model.All, model.StemIrrealis, r(model.Nakereba)),
		rule("なきゃ", "", model.All, model.StemIrrealis, r(model.Nakya)),
		rule("ないと", "", model.All, model.StemIrrealis, r(model.Naito)),
		rule("ないで", "", model.All, model.StemIrrealis, r(model.Naide)),
		rule("ず", "", model.All, model.StemIrrealis, r(model.Zu)),
		rule("ぬ", "", model.All, model.StemIrrealis, r(model.Nu)),

		rule("よう", "る", model.All, ichiKuru, r(model.Volitional)),
		rule("れば", "る", model.All, ichiKuru, r(model.Ba)),
		rule("ろ", "る", model.All, ichiKuru, r(model.Imperative)),
		rule("るな", "る", model.All, ichiKuru, r(model.ImperativeNegative)),
		rule("るだろう", "る", model.All, ichiKuru, r(model.Darou)),
		rule("るでしょう", "る", model.All, ichiKuru, r(model.Deshou)),
		rule("るらしい", "る", model.All, ichiKuru, r(model.Rashii)),
		rule("るそうだ", "る", model.All, ichiKuru, r(model.Souda)),
		rule("るようだ", "る", model.All, ichiKuru, r(model.Youda)),
		rule("るみたい", "る", model.All, ichiKuru, r(model.Mitai)),

		// Ambiguous られる/させる/させられる: every Ichidan-shaped verb
		// (including a causative stem, which is itself Ichidan-shaped)
		// can take these, which is exactly what makes the
		// Causative-over-PotentialOrPassive fusion observable: a
		// causative applied on top of a chain whose first reason is
		// already PotentialOrPassive collapses in place.
		rule("られる", "る", ichiKuru, ichiKuru, r(model.PotentialOrPassive)),
		rule("させる", "る", ichiKuru, ichiKuru, r(model.Causative)),
		rule("させられる", "る", ichiKuru, ichiKuru, r(model.CausativePassive)),
	}
}

// buildIAdjRules generates the rules for i-adjectives (美しい).
func buildIAdjRules() []model.DeinflectRule {
	t := model.IAdj
	return []model.DeinflectRule{
		rule("かった", "い", model.All, t, r(model.Past)),
		rule("くない", "い", model.All, t, r(model.Negative)),
		rule("くなかった", "い", model.All, t, r(model.NegativePast)),
		rule("くて", "い", model.All, t, r(model.Te)),
		rule("く", "い", model.All, t, r(model.Adv)),
		rule("さ", "い", model.All, t, r(model.Noun)),
		rule("そう", "い", model.All, t, r(model.Sou)),
		rule("すぎる", "い", model.All, t, r(model.Sugiru)),
		rule("ければ", "い", model.All, t, r(model.Ba)),
		rule("かったら", "い", model.All, t, r(model.Tara)),
		rule("かろう", "い", model.All, t, r(model.Darou)),
		rule("いでしょう", "い", model.All, t, r(model.Deshou)),
		rule("らしい", "い", model.All, t, r(model.Rashii)),
		rule("そうだ", "い", model.All, t, r(model.Souda)),
		rule("みたい", "い", model.All, t, r(model.Mitai)),
		rule("がる", "い", model.All, t, r(model.Garu)),
	}
}

// buildSuruRules generates the rules for する and any noun+する
// compound verb (suffix matching naturally generalizes this: a rule
// whose from ends in します matches any word ending "...します", not
// just bare します).
func buildSuruRules() []model.DeinflectRule {
	t := model.SuruVerb
	return []model.DeinflectRule{
		rule("します", "する", model.All, t, r(model.Polite)),
		rule("しました", "する", model.All, t, r(model.PolitePast)),
		rule("しません", "する", model.All, t, r(model.PoliteNegative)),
		rule("しませんでした", "する", model.All, t, r(model.PoliteNegativePast)),
		rule("した", "する", model.All, t, r(model.Past)),
		rule("して", "する", model.All, t, r(model.Te)),
		rule("しない", "する", model.All, t, r(model.Negative)),
		rule("しなかった", "する", model.All, t, r(model.NegativePast)),
		rule("したい", "する", model.All, t, r(model.Tai)),
		rule("しよう", "する", model.All, t, r(model.Volitional)),
		rule("すれば", "する", model.All, t, r(model.Ba)),
		rule("したら", "する", model.All, t, r(model.Tara)),
		rule("せず", "する", model.All, t, r(model.Zu)),
		rule("される", "する", model.All, t, r(model.PotentialOrPassive)),
		rule("させる", "する", model.All, t, r(model.Causative)),
		rule("させられる", "する", model.All, t, r(model.CausativePassive)),
		rule("できる", "する", model.All, t, r(model.Potential)),
		rule("しろ", "する", model.All, t, r(model.Imperative)),
		rule("している", "する", model.All, t, r(model.Continuous)),
		rule("していた", "する", model.All, t, r(model.ContinuousPast)),
	}
}

// selfCheckRules validates the static rule table at startup, failing
// loudly if it fails internal consistency checks. Every rule must have
// a non-empty From, a non-zero FromType and ToType, and every named
// Reason must be registered in the model package's reason vocabulary.
func selfCheckRules(rules []model.DeinflectRule) {
	for _, rl := range rules {
		if rl.From == "" {
			panic("deinflect: rule table contains a rule with empty From")
		}
		if rl.FromType == 0 || rl.ToType == 0 {
			panic("deinflect: rule table contains a rule with zero type mask: " + rl.From)
		}
		for _, reason := range rl.Reasons {
			if !reason.IsRegistered() {
				panic("deinflect: rule table names an unregistered reason for rule: " + rl.From)
			}
		}
	}
}
