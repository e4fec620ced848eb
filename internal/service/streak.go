package service

import "time"

// sameDay 是否同一个日历日
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// advanceStreak 按日历日推进连续学习天数：
// 昨天有活动则 +1，今天已有活动保持不变，否则重置为 1。
func advanceStreak(current int, last *time.Time, now time.Time) int {
	if last == nil {
		return 1
	}
	if sameDay(*last, now) {
		return current
	}
	if sameDay(last.AddDate(0, 0, 1), now) {
		return current + 1
	}
	return 1
}
