package service

// BadgeRarity 徽章稀有度
type BadgeRarity string

const (
	RarityCommon    BadgeRarity = "common"
	RarityUncommon  BadgeRarity = "uncommon"
	RarityRare      BadgeRarity = "rare"
	RarityLegendary BadgeRarity = "legendary"
)

// 稀有度对应的解锁 XP 奖励
var rarityBonusXP = map[BadgeRarity]int{
	RarityCommon:    25,
	RarityUncommon:  50,
	RarityRare:      100,
	RarityLegendary: 200,
}

// StatsSnapshot 徽章判定用的统计快照。判定函数必须是该快照的纯函数。
type StatsSnapshot struct {
	TotalSessions         int     `json:"totalSessions"`
	CurrentStreak         int     `json:"currentStreak"`
	LongestStreak         int     `json:"longestStreak"`
	OverallAccuracy       float64 `json:"overallAccuracy"`
	AverageResponseTimeMs int64   `json:"averageResponseTimeMs"`
	TotalStudyTimeMs      int64   `json:"totalStudyTimeMs"`
	PerfectSessions       int     `json:"perfectSessions"`
	NightSessions         int     `json:"nightSessions"`
	EarlySessions         int     `json:"earlySessions"`
	CategoriesStudied     int     `json:"categoriesStudied"`
}

// Badge 徽章定义
type Badge struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Rarity      BadgeRarity `json:"rarity"`
	Condition   func(StatsSnapshot) bool `json:"-"`
}

// BonusXP 解锁该徽章的 XP 奖励
func (b Badge) BonusXP() int {
	return rarityBonusXP[b.Rarity]
}

// Badges 全部徽章定义（静态注册表）
var Badges = []Badge{
	{
		ID: "first_session", Name: "初心者", Description: "初回学習セッション完了",
		Icon: "🌱", Rarity: RarityCommon,
		Condition: func(s StatsSnapshot) bool { return s.TotalSessions >= 1 },
	},
	{
		ID: "streak_3", Name: "継続の力", Description: "3日連続学習",
		Icon: "🔥", Rarity: RarityCommon,
		Condition: func(s StatsSnapshot) bool { return s.CurrentStreak >= 3 },
	},
	{
		ID: "streak_7", Name: "一週間戦士", Description: "7日連続学習",
		Icon: "⚡", Rarity: RarityUncommon,
		Condition: func(s StatsSnapshot) bool { return s.CurrentStreak >= 7 },
	},
	{
		ID: "streak_30", Name: "習慣マスター", Description: "30日連続学習",
		Icon: "👑", Rarity: RarityLegendary,
		Condition: func(s StatsSnapshot) bool { return s.CurrentStreak >= 30 },
	},
	{
		ID: "accuracy_90", Name: "精密射手", Description: "正答率90%以上を達成",
		Icon: "🎯", Rarity: RarityRare,
		Condition: func(s StatsSnapshot) bool { return s.OverallAccuracy >= 90 },
	},
	{
		ID: "speed_demon", Name: "スピードデーモン", Description: "平均回答時間5秒以下",
		Icon: "💨", Rarity: RarityRare,
		Condition: func(s StatsSnapshot) bool {
			return s.TotalSessions > 0 && s.AverageResponseTimeMs > 0 && s.AverageResponseTimeMs <= 5000
		},
	},
	{
		ID: "night_owl", Name: "夜更かし学習者", Description: "22時以降に学習セッション完了",
		Icon: "🦉", Rarity: RarityUncommon,
		Condition: func(s StatsSnapshot) bool { return s.NightSessions >= 5 },
	},
	{
		ID: "early_bird", Name: "早起き学習者", Description: "6時前に学習セッション完了",
		Icon: "🐦", Rarity: RarityUncommon,
		Condition: func(s StatsSnapshot) bool { return s.EarlySessions >= 5 },
	},
	{
		ID: "perfectionist", Name: "完璧主義者", Description: "100%正答率のセッションを5回達成",
		Icon: "💎", Rarity: RarityLegendary,
		Condition: func(s StatsSnapshot) bool { return s.PerfectSessions >= 5 },
	},
	{
		ID: "knowledge_seeker", Name: "知識探求者", Description: "全カテゴリで学習",
		Icon: "📚", Rarity: RarityRare,
		Condition: func(s StatsSnapshot) bool { return s.CategoriesStudied >= 3 },
	},
	{
		ID: "marathon_runner", Name: "マラソンランナー", Description: "累計学習時間100時間達成",
		Icon: "🏃", Rarity: RarityLegendary,
		Condition: func(s StatsSnapshot) bool { return s.TotalStudyTimeMs >= 360000000 },
	},
}

// FindBadge 按 ID 查找徽章定义
func FindBadge(id string) (Badge, bool) {
	for _, b := range Badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
