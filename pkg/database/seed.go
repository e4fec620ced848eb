package database

import (
	"studymo_backend/internal/model"

	"gorm.io/gorm"
)

type seedItem struct {
	key             string
	kind            string
	prompt          string
	options         []string
	correctOption   int
	acceptedAnswers []string
	difficulty      int
	tags            []string
	explanation     string
}

type seedCategory struct {
	key   string
	name  string
	icon  string
	color string
	items []seedItem
}

// 默认题库（空库时写入）
var defaultCatalog = []seedCategory{
	{
		key: "programming", name: "プログラミング", icon: "💻", color: "blue",
		items: []seedItem{
			{key: "prog_quiz_001", kind: "multiple_choice", prompt: "HTMLの正式名称は何ですか？",
				options:       []string{"HyperText Markup Language", "High Tech Modern Language", "Home Tool Markup Language", "Hyperlink Text Management Language"},
				correctOption: 0, difficulty: 1, tags: []string{"HTML", "基礎"},
				explanation: "HTMLは「HyperText Markup Language」の略で、Webページの構造を定義するマークアップ言語です。"},
			{key: "prog_quiz_002", kind: "multiple_choice", prompt: "CSSで要素を中央揃えにするプロパティはどれですか？",
				options:       []string{"align-center", "text-align: center", "center-align", "middle-align"},
				correctOption: 1, difficulty: 2, tags: []string{"CSS", "レイアウト"},
				explanation: "text-align: center は、インライン要素やテキストを中央揃えにするCSSプロパティです。"},
			{key: "prog_quiz_003", kind: "text_input", prompt: "JavaScriptで変数を宣言するキーワードを1つ答えてください。",
				acceptedAnswers: []string{"var", "let", "const"}, difficulty: 1, tags: []string{"JavaScript", "変数"},
				explanation: "JavaScriptでは var、let、const のいずれかを使って変数を宣言できます。"},
			{key: "prog_quiz_004", kind: "multiple_choice", prompt: "HTMLでリンクを作成するタグはどれですか？",
				options:       []string{"<link>", "<a>", "<href>", "<url>"},
				correctOption: 1, difficulty: 1, tags: []string{"HTML", "タグ"},
				explanation: "<a>タグはアンカー要素で、href属性でリンク先を指定します。"},
			{key: "prog_quiz_005", kind: "text_input", prompt: "CSSでフォントサイズを指定するプロパティ名を答えてください。",
				acceptedAnswers: []string{"font-size"}, difficulty: 1, tags: []string{"CSS", "フォント"},
				explanation: "font-sizeプロパティでフォントのサイズを指定できます。"},
			{key: "prog_quiz_006", kind: "multiple_choice", prompt: "HTMLで画像を表示するタグはどれですか？",
				options:       []string{"<image>", "<img>", "<pic>", "<photo>"},
				correctOption: 1, difficulty: 1, tags: []string{"HTML", "画像"},
				explanation: "<img>タグでsrc属性に画像のパスを指定して画像を表示します。"},
			{key: "prog_quiz_007", kind: "text_input", prompt: "JavaScriptでコンソールに出力する関数名を答えてください。",
				acceptedAnswers: []string{"console.log"}, difficulty: 1, tags: []string{"JavaScript", "デバッグ"},
				explanation: "console.log()関数でブラウザのコンソールに値を出力できます。"},
			{key: "prog_quiz_008", kind: "multiple_choice", prompt: "CSSでボックスモデルに含まれないものはどれですか？",
				options:       []string{"margin", "padding", "border", "background"},
				correctOption: 3, difficulty: 2, tags: []string{"CSS", "ボックスモデル"},
				explanation: "ボックスモデルはcontent、padding、border、marginで構成されます。backgroundは含まれません。"},
			{key: "prog_quiz_009", kind: "text_input", prompt: "HTMLの基本構造で、ページのタイトルを設定するタグを答えてください。",
				acceptedAnswers: []string{"title", "<title>"}, difficulty: 1, tags: []string{"HTML", "構造"},
				explanation: "<title>タグでブラウザのタブに表示されるページタイトルを設定します。"},
			{key: "prog_quiz_010", kind: "multiple_choice", prompt: "JavaScriptで配列を作成する正しい方法はどれですか？",
				options:       []string{"var arr = [];", "var arr = {};", "var arr = ();", "var arr = <>;"},
				correctOption: 0, difficulty: 2, tags: []string{"JavaScript", "配列"},
				explanation: "[]を使って空の配列を作成できます。{}はオブジェクト、()は関数呼び出しに使用されます。"},
			{key: "prog_quiz_011", kind: "text_input", prompt: "CSSでフレックスボックスを有効にするプロパティ値を答えてください。",
				acceptedAnswers: []string{"flex", "display: flex"}, difficulty: 2, tags: []string{"CSS", "フレックスボックス"},
				explanation: "display: flex でフレックスボックスレイアウトを有効にできます。"},
			{key: "prog_quiz_012", kind: "multiple_choice", prompt: "HTMLで順序なしリストを作成するタグはどれですか？",
				options:       []string{"<ol>", "<ul>", "<list>", "<li>"},
				correctOption: 1, difficulty: 1, tags: []string{"HTML", "リスト"},
				explanation: "<ul>は順序なしリスト、<ol>は順序ありリスト、<li>はリスト項目を表します。"},
			{key: "prog_quiz_013", kind: "text_input", prompt: "JavaScriptで文字列を数値に変換する関数を1つ答えてください。",
				acceptedAnswers: []string{"parseInt", "parseFloat", "Number"}, difficulty: 2, tags: []string{"JavaScript", "型変換"},
				explanation: "parseInt()、parseFloat()、Number()などで文字列を数値に変換できます。"},
			{key: "prog_quiz_014", kind: "multiple_choice", prompt: "CSSでグリッドレイアウトを有効にするプロパティ値はどれですか？",
				options:       []string{"display: grid", "layout: grid", "grid: true", "grid-layout: on"},
				correctOption: 0, difficulty: 3, tags: []string{"CSS", "グリッド"},
				explanation: "display: grid でCSSグリッドレイアウトを有効にできます。"},
			{key: "prog_quiz_015", kind: "text_input", prompt: "HTMLでフォームを作成するタグを答えてください。",
				acceptedAnswers: []string{"form", "<form>"}, difficulty: 1, tags: []string{"HTML", "フォーム"},
				explanation: "<form>タグでユーザー入力を受け取るフォームを作成します。"},
		},
	},
	{
		key: "english", name: "英語", icon: "🇺🇸", color: "red",
		items: []seedItem{
			{key: "eng_quiz_001", kind: "multiple_choice", prompt: "「こんにちは」を英語で言うと？",
				options:       []string{"Good morning", "Hello", "Good night", "Goodbye"},
				correctOption: 1, difficulty: 1, tags: []string{"挨拶", "基礎"},
				explanation: "Helloは時間を問わず使える一般的な挨拶です。"},
			{key: "eng_quiz_002", kind: "text_input", prompt: "「ありがとう」の英語を答えてください。",
				acceptedAnswers: []string{"thank you", "thanks"}, difficulty: 1, tags: []string{"挨拶", "感謝"},
				explanation: "Thank youまたはThanksで感謝を表現できます。"},
			{key: "eng_quiz_003", kind: "multiple_choice", prompt: "「I am a student.」の意味はどれですか？",
				options:       []string{"私は先生です", "私は学生です", "私は医者です", "私は会社員です"},
				correctOption: 1, difficulty: 1, tags: []string{"be動詞", "職業"},
				explanation: "I am a student. は「私は学生です」という意味です。"},
			{key: "eng_quiz_004", kind: "text_input", prompt: "「cat」の複数形を答えてください。",
				acceptedAnswers: []string{"cats"}, difficulty: 1, tags: []string{"名詞", "複数形"},
				explanation: "一般的な名詞の複数形は語尾に-sを付けます。"},
			{key: "eng_quiz_005", kind: "multiple_choice", prompt: "「彼は走っています」を英語で言うとどれですか？",
				options:       []string{"He run", "He runs", "He is running", "He was running"},
				correctOption: 2, difficulty: 2, tags: []string{"現在進行形", "動詞"},
				explanation: "現在進行形は「be動詞 + 動詞のing形」で表現します。"},
		},
	},
	{
		key: "business", name: "ビジネス", icon: "💼", color: "purple",
		items: []seedItem{
			{key: "biz_quiz_001", kind: "multiple_choice", prompt: "PDCAサイクルの「P」は何を表しますか？",
				options:       []string{"Practice", "Plan", "Process", "Product"},
				correctOption: 1, difficulty: 2, tags: []string{"PDCA", "業務改善"},
				explanation: "PDCAのPはPlan（計画）を表します。"},
			{key: "biz_quiz_002", kind: "text_input", prompt: "KPIの正式名称を答えてください。",
				acceptedAnswers: []string{"Key Performance Indicator", "key performance indicator"}, difficulty: 2, tags: []string{"KPI", "指標"},
				explanation: "KPIはKey Performance Indicator（重要業績評価指標）の略です。"},
			{key: "biz_quiz_003", kind: "multiple_choice", prompt: "SWOT分析の「S」は何を表しますか？",
				options:       []string{"Strategy", "Strength", "System", "Service"},
				correctOption: 1, difficulty: 2, tags: []string{"SWOT", "分析"},
				explanation: "SWOT分析のSはStrength（強み）を表します。"},
		},
	},
	{
		key: "design", name: "デザイン", icon: "🎨", color: "pink",
		items: []seedItem{
			{key: "design_quiz_001", kind: "multiple_choice", prompt: "RGBカラーモデルで「R」は何を表しますか？",
				options:       []string{"Red", "Right", "Round", "Ratio"},
				correctOption: 0, difficulty: 1, tags: []string{"色彩", "RGB"},
				explanation: "RGBのRはRed（赤）を表します。"},
		},
	},
	{
		key: "marketing", name: "マーケティング", icon: "📈", color: "green",
		items: []seedItem{
			{key: "marketing_quiz_001", kind: "multiple_choice", prompt: "4Pマーケティングに含まれないものはどれですか？",
				options:       []string{"Product", "Price", "Promotion", "Performance"},
				correctOption: 3, difficulty: 2, tags: []string{"4P", "マーケティングミックス"},
				explanation: "4PはProduct、Price、Place、Promotionです。"},
		},
	},
	{
		key: "finance", name: "ファイナンス", icon: "💰", color: "yellow",
		items: []seedItem{
			{key: "finance_quiz_001", kind: "text_input", prompt: "ROIの正式名称を答えてください。",
				acceptedAnswers: []string{"Return on Investment", "return on investment"}, difficulty: 2, tags: []string{"ROI", "投資"},
				explanation: "ROIはReturn on Investment（投資収益率）の略です。"},
		},
	},
}

func seedCatalog(db *gorm.DB) error {
	var count int64
	db.Model(&model.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	for _, sc := range defaultCatalog {
		category := &model.Category{
			Key:   sc.key,
			Name:  sc.name,
			Icon:  sc.icon,
			Color: sc.color,
		}
		if err := db.Create(category).Error; err != nil {
			return err
		}

		for _, si := range sc.items {
			item := &model.QuestionItem{
				ItemKey:         si.key,
				CategoryID:      category.ID,
				Kind:            model.ItemKind(si.kind),
				Prompt:          si.prompt,
				Options:         si.options,
				CorrectOption:   si.correctOption,
				AcceptedAnswers: si.acceptedAnswers,
				Difficulty:      si.difficulty,
				Tags:            si.tags,
				Explanation:     si.explanation,
			}
			if err := db.Create(item).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
