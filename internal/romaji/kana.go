// Package romaji derives Hepburn romanisations of Japanese text.
// It backs the audit pass's romaji-consistency check; the comparison
// there is folded, so minor Hepburn variants are tolerated.
package romaji

import "strings"

// digraphs maps two-rune katakana combinations. Checked before the
// single-rune table.
var digraphs = map[string]string{
	"キャ": "kya", "キュ": "kyu", "キョ": "kyo",
	"ギャ": "gya", "ギュ": "gyu", "ギョ": "gyo",
	"シャ": "sha", "シュ": "shu", "ショ": "sho", "シェ": "she",
	"ジャ": "ja", "ジュ": "ju", "ジョ": "jo", "ジェ": "je",
	"チャ": "cha", "チュ": "chu", "チョ": "cho", "チェ": "che",
	"ニャ": "nya", "ニュ": "nyu", "ニョ": "nyo",
	"ヒャ": "hya", "ヒュ": "hyu", "ヒョ": "hyo",
	"ビャ": "bya", "ビュ": "byu", "ビョ": "byo",
	"ピャ": "pya", "ピュ": "pyu", "ピョ": "pyo",
	"ミャ": "mya", "ミュ": "myu", "ミョ": "myo",
	"リャ": "rya", "リュ": "ryu", "リョ": "ryo",
	"ティ": "ti", "ディ": "di", "デュ": "dyu",
	"ファ": "fa", "フィ": "fi", "フェ": "fe", "フォ": "fo",
	"ウィ": "wi", "ウェ": "we", "ウォ": "wo",
	"ツァ": "tsa", "ツェ": "tse", "ツォ": "tso",
}

// syllables maps single katakana runes.
var syllables = map[rune]string{
	'ア': "a", 'イ': "i", 'ウ': "u", 'エ': "e", 'オ': "o",
	'カ': "ka", 'キ': "ki", 'ク': "ku", 'ケ': "ke", 'コ': "ko",
	'ガ': "ga", 'ギ': "gi", 'グ': "gu", 'ゲ': "ge", 'ゴ': "go",
	'サ': "sa", 'シ': "shi", 'ス': "su", 'セ': "se", 'ソ': "so",
	'ザ': "za", 'ジ': "ji", 'ズ': "zu", 'ゼ': "ze", 'ゾ': "zo",
	'タ': "ta", 'チ': "chi", 'ツ': "tsu", 'テ': "te", 'ト': "to",
	'ダ': "da", 'ヂ': "ji", 'ヅ': "zu", 'デ': "de", 'ド': "do",
	'ナ': "na", 'ニ': "ni", 'ヌ': "nu", 'ネ': "ne", 'ノ': "no",
	'ハ': "ha", 'ヒ': "hi", 'フ': "fu", 'ヘ': "he", 'ホ': "ho",
	'バ': "ba", 'ビ': "bi", 'ブ': "bu", 'ベ': "be", 'ボ': "bo",
	'パ': "pa", 'ピ': "pi", 'プ': "pu", 'ペ': "pe", 'ポ': "po",
	'マ': "ma", 'ミ': "mi", 'ム': "mu", 'メ': "me", 'モ': "mo",
	'ヤ': "ya", 'ユ': "yu", 'ヨ': "yo",
	'ラ': "ra", 'リ': "ri", 'ル': "ru", 'レ': "re", 'ロ': "ro",
	'ワ': "wa", 'ヲ': "o", 'ン': "n",
	'ヴ': "vu",
	'ァ': "a", 'ィ': "i", 'ゥ': "u", 'ェ': "e", 'ォ': "o",
	'ャ': "ya", 'ュ': "yu", 'ョ': "yo",
}

// FromKatakana converts a katakana reading to Hepburn romaji.
// Unknown runes pass through unchanged.
func FromKatakana(kana string) string {
	runes := []rune(kana)
	var b strings.Builder

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		// Sokuon doubles the next consonant; っち becomes tchi.
		if r == 'ッ' {
			next := lookupAt(runes, i+1)
			if next != "" {
				if strings.HasPrefix(next, "ch") {
					b.WriteByte('t')
				} else {
					b.WriteByte(next[0])
				}
			}
			continue
		}

		// Long-vowel mark repeats the previous vowel.
		if r == 'ー' {
			s := b.String()
			if len(s) > 0 {
				b.WriteByte(s[len(s)-1])
			}
			continue
		}

		if i+1 < len(runes) {
			if d, ok := digraphs[string(runes[i:i+2])]; ok {
				b.WriteString(d)
				i++
				continue
			}
		}
		if s, ok := syllables[r]; ok {
			b.WriteString(s)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// lookupAt returns the romaji starting at position i, honouring
// digraphs, or "" when nothing maps.
func lookupAt(runes []rune, i int) string {
	if i >= len(runes) {
		return ""
	}
	if i+1 < len(runes) {
		if d, ok := digraphs[string(runes[i:i+2])]; ok {
			return d
		}
	}
	return syllables[runes[i]]
}
