package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// 免费用户每日会话配额
const (
	FreeDailyQuota = 1
)

// 每日配额计数的 Redis 键前缀（键中带日期，跨天自动失效）
const QuotaKeyPrefix = "studymo:quota"
