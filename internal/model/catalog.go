package model

// ItemKind 题目类型
type ItemKind string

const (
	MultipleChoice ItemKind = "multiple_choice"
	FreeText       ItemKind = "text_input"
)

// Category 学习内容分类
// swagger:model Category
type Category struct {
	BaseModel
	Key   string `gorm:"size:50;uniqueIndex;not null" json:"key"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Icon  string `gorm:"size:20" json:"icon"`
	Color string `gorm:"size:20" json:"color"`

	Items []QuestionItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

// QuestionItem 题库条目，构建时写入后不再修改
// swagger:model QuestionItem
type QuestionItem struct {
	BaseModel
	ItemKey    string   `gorm:"size:50;uniqueIndex;not null" json:"itemKey"`
	CategoryID uint     `gorm:"index;not null" json:"categoryId"`
	Kind       ItemKind `gorm:"size:20;not null" json:"kind"`
	Prompt     string   `gorm:"type:text;not null" json:"prompt"`
	// 选择题字段：选项与正确选项下标
	Options       []string `gorm:"serializer:json;type:json" json:"options,omitempty"`
	CorrectOption int      `gorm:"default:0" json:"-"`
	// 记述题字段：可接受答案集合（比较时忽略大小写与首尾空白）
	AcceptedAnswers []string `gorm:"serializer:json;type:json" json:"-"`
	Difficulty      int      `gorm:"default:1" json:"difficulty"`
	Tags            []string `gorm:"serializer:json;type:json" json:"tags"`
	Explanation     string   `gorm:"type:text" json:"explanation,omitempty"`
}

func (QuestionItem) TableName() string {
	return "question_items"
}
