package transliteration

// atoms maps romaji atoms to their hiragana and katakana spellings. Both
// tables share the same keys, so they are kept side by side.
var atoms = []struct {
	romaji   string
	hiragana string
	katakana string
}{
	{"-", "ー", "ー"},
	{",", "、", "、"},
	{"!", "！", "！"},
	{"?", "？", "？"},
	{"...", "…", "…"},
	{".", "。", "。"},
	{"n'", "ん", "ン"},

	{"a", "あ", "ア"},
	{"i", "い", "イ"},
	{"u", "う", "ウ"},
	{"e", "え", "エ"},
	{"o", "お", "オ"},

	{"ka", "か", "カ"},
	{"ki", "き", "キ"},
	{"ku", "く", "ク"},
	{"ke", "け", "ケ"},
	{"ko", "こ", "コ"},
	{"kya", "きゃ", "キャ"},
	{"kyu", "きゅ", "キュ"},
	{"kyo", "きょ", "キョ"},
	{"kka", "っか", "ッカ"},
	{"kki", "っき", "ッキ"},
	{"kku", "っく", "ック"},
	{"kke", "っけ", "ッケ"},
	{"kko", "っこ", "ッコ"},
	{"kkya", "っきゃ", "ッキャ"},
	{"kkyu", "っきゅ", "ッキュ"},
	{"kkyo", "っきょ", "ッキョ"},

	{"ga", "が", "ガ"},
	{"gi", "ぎ", "ギ"},
	{"gu", "ぐ", "グ"},
	{"ge", "げ", "ゲ"},
	{"go", "ご", "ゴ"},
	{"gya", "ぎゃ", "ギャ"},
	{"gyu", "ぎゅ", "ギュ"},
	{"gyo", "ぎょ", "ギョ"},

	{"sa", "さ", "サ"},
	{"shi", "し", "シ"},
	{"su", "す", "ス"},
	{"se", "せ", "セ"},
	{"so", "そ", "ソ"},
	{"sha", "しゃ", "シャ"},
	{"shu", "しゅ", "シュ"},
	{"she", "しぇ", "シェ"},
	{"sho", "しょ", "ショ"},
	{"ssa", "っさ", "ッサ"},
	{"sshi", "っし", "ッシ"},
	{"ssu", "っす", "ッス"},
	{"sse", "っせ", "ッセ"},
	{"sso", "っそ", "ッソ"},
	{"ssha", "っしゃ", "ッシャ"},
	{"sshu", "っしゅ", "ッシュ"},
	{"ssho", "っしょ", "ッショ"},

	{"za", "ざ", "ザ"},
	{"ji", "じ", "ジ"},
	{"zu", "ず", "ズ"},
	{"ze", "ぜ", "ゼ"},
	{"zo", "ぞ", "ゾ"},
	{"ja", "じゃ", "ジャ"},
	{"ju", "じゅ", "ジュ"},
	{"je", "じぇ", "ジェ"},
	{"jo", "じょ", "ジョ"},

	{"ta", "た", "タ"},
	{"chi", "ち", "チ"},
	{"tsu", "つ", "ツ"},
	{"tu", "つ", "ツ"},
	{"te", "て", "テ"},
	{"to", "と", "ト"},
	{"ti", "てぃ", "ティ"},
	{"cha", "ちゃ", "チャ"},
	{"chu", "ちゅ", "チュ"},
	{"che", "ちぇ", "チェ"},
	{"cho", "ちょ", "チョ"},
	{"tta", "った", "ッタ"},
	{"tte", "って", "ッテ"},
	{"tto", "っと", "ット"},
	{"ttsu", "っつ", "ッツ"},
	{"cchi", "っち", "ッチ"},
	{"ccha", "っちゃ", "ッチャ"},
	{"cchu", "っちゅ", "ッチュ"},
	{"ccho", "っちょ", "ッチョ"},

	{"da", "だ", "ダ"},
	{"di", "ぢ", "ヂ"},
	{"du", "づ", "ヅ"},
	{"dzu", "づ", "ヅ"},
	{"de", "で", "デ"},
	{"do", "ど", "ド"},
	{"ddo", "っど", "ッド"},

	{"na", "な", "ナ"},
	{"ni", "に", "ニ"},
	{"nu", "ぬ", "ヌ"},
	{"ne", "ね", "ネ"},
	{"no", "の", "ノ"},
	{"nya", "にゃ", "ニャ"},
	{"nyu", "にゅ", "ニュ"},
	{"nyo", "にょ", "ニョ"},

	{"ha", "は", "ハ"},
	{"hi", "ひ", "ヒ"},
	{"fu", "ふ", "フ"},
	{"he", "へ", "ヘ"},
	{"ho", "ほ", "ホ"},
	{"hya", "ひゃ", "ヒャ"},
	{"hyu", "ひゅ", "ヒュ"},
	{"hyo", "ひょ", "ヒョ"},
	{"fa", "ふぁ", "ファ"},
	{"fi", "ふぃ", "フィ"},
	{"fe", "ふぇ", "フェ"},
	{"fo", "ふぉ", "フォ"},

	{"ba", "ば", "バ"},
	{"bi", "び", "ビ"},
	{"bu", "ぶ", "ブ"},
	{"be", "べ", "ベ"},
	{"bo", "ぼ", "ボ"},
	{"bya", "びゃ", "ビャ"},
	{"byu", "びゅ", "ビュ"},
	{"byo", "びょ", "ビョ"},

	{"pa", "ぱ", "パ"},
	{"pi", "ぴ", "ピ"},
	{"pu", "ぷ", "プ"},
	{"pe", "ぺ", "ペ"},
	{"po", "ぽ", "ポ"},
	{"pya", "ぴゃ", "ピャ"},
	{"pyu", "ぴゅ", "ピュ"},
	{"pyo", "ぴょ", "ピョ"},
	{"ppa", "っぱ", "ッパ"},
	{"ppi", "っぴ", "ッピ"},
	{"ppu", "っぷ", "ップ"},
	{"ppo", "っぽ", "ッポ"},

	{"ma", "ま", "マ"},
	{"mi", "み", "ミ"},
	{"mu", "む", "ム"},
	{"me", "め", "メ"},
	{"mo", "も", "モ"},
	{"mya", "みゃ", "ミャ"},
	{"myu", "みゅ", "ミュ"},
	{"myo", "みょ", "ミョ"},
	{"mma", "っま", "ッマ"},
	{"mmi", "っみ", "ッミ"},
	{"mmu", "っむ", "ッム"},
	{"mme", "っめ", "ッメ"},
	{"mmo", "っも", "ッモ"},

	{"ya", "や", "ヤ"},
	{"yu", "ゆ", "ユ"},
	{"yo", "よ", "ヨ"},

	{"ra", "ら", "ラ"},
	{"ri", "り", "リ"},
	{"ru", "る", "ル"},
	{"re", "れ", "レ"},
	{"ro", "ろ", "ロ"},
	{"rya", "りゃ", "リャ"},
	{"ryu", "りゅ", "リュ"},
	{"ryo", "りょ", "リョ"},

	{"wa", "わ", "ワ"},
	{"wi", "うぃ", "ウィ"},
	{"we", "うぇ", "ウェ"},
	{"wo", "を", "ヲ"},

	{"va", "ゔぁ", "ヴァ"},
	{"vi", "ゔぃ", "ヴィ"},
	{"vu", "ゔ", "ヴ"},
	{"ve", "ゔぇ", "ヴェ"},
	{"vo", "ゔぉ", "ヴォ"},

	// small kana
	{"xa", "ぁ", "ァ"},
	{"xi", "ぃ", "ィ"},
	{"xu", "ぅ", "ゥ"},
	{"xe", "ぇ", "ェ"},
	{"xo", "ぉ", "ォ"},
	{"xya", "ゃ", "ャ"},
	{"xyu", "ゅ", "ュ"},
	{"xyo", "ょ", "ョ"},
	{"xwa", "ゎ", "ヮ"},
	{"xtsu", "っ", "ッ"},
}
