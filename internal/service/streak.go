package service

import "time"

// StreakUpdate 一次写入后的连续天数
type StreakUpdate struct {
	Current       int
	Longest       int
	LastEntryDate time.Time
	// Backdated 上次日期晚于今天，本次不做修改
	Backdated bool
}

// NextStreak 按 UTC 日历日计算连续天数，不依赖任何存储
func NextStreak(last *time.Time, current, longest int, today time.Time) StreakUpdate {
	day := utcDay(today)
	if last == nil {
		return StreakUpdate{Current: 1, Longest: max(longest, 1), LastEntryDate: day}
	}

	lastDay := utcDay(*last)
	diff := int(day.Sub(lastDay).Hours() / 24)

	switch {
	case diff < 0:
		return StreakUpdate{Current: current, Longest: max(longest, current), LastEntryDate: lastDay, Backdated: true}
	case diff == 0:
		// 同一天重复写入不变
	case diff == 1:
		current++
	default:
		current = 1
	}
	return StreakUpdate{Current: current, Longest: max(longest, current), LastEntryDate: day}
}

// HitPaywall 本次写入后条数达到免费额度即标记
func HitPaywall(existing int64, limit int) bool {
	return existing+1 >= int64(limit)
}

func utcDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
