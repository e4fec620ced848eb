package service

// PetState 学習ペット：等级驱动的进化阶段
type PetState struct {
	Emoji string `json:"emoji"`
	Name  string `json:"name"`
	Stage string `json:"stage"`
	// 距离下一进化阶段还差的等级数，最终形态为 0
	LevelsToNextStage int `json:"levelsToNextStage"`
}

var petStages = []struct {
	minLevel int
	emoji    string
	name     string
	stage    string
}{
	{20, "🐉", "ドラゴン", "legendary"},
	{15, "🦄", "ユニコーン", "mythical"},
	{10, "🐺", "オオカミ", "advanced"},
	{5, "🐱", "ネコ", "intermediate"},
	{0, "🐣", "ヒヨコ", "beginner"},
}

// PetForLevel 按等级返回宠物进化阶段
func PetForLevel(level int) PetState {
	for i, stage := range petStages {
		if level >= stage.minLevel {
			pet := PetState{
				Emoji: stage.emoji,
				Name:  stage.name,
				Stage: stage.stage,
			}
			if i > 0 {
				pet.LevelsToNextStage = petStages[i-1].minLevel - level
			}
			return pet
		}
	}
	return PetState{Emoji: "🐣", Name: "ヒヨコ", Stage: "beginner", LevelsToNextStage: 5 - level}
}
