package services

import (
	"testing"

	"qlnt/constants"

	"github.com/stretchr/testify/assert"
)

func TestResolveDefaultRateWhenEmpty(t *testing.T) {
	env := newTestEnv()

	price := env.rates.Resolve(date("2025-06-15"), nil)
	assert.Equal(t, constants.DefaultElectricityRate, price)
}

func TestResolvePicksLatestEffectiveGlobalRate(t *testing.T) {
	env := newTestEnv()
	env.seedGlobalRate("2025-01-01", 5.0)
	env.seedGlobalRate("2025-06-01", 5.5)
	env.seedGlobalRate("2026-01-01", 6.0) // chưa tới ngày hiệu lực

	price := env.rates.Resolve(date("2025-07-10"), nil)
	assert.Equal(t, 5.5, price)

	// Trước mốc tăng giá vẫn dùng giá cũ
	price = env.rates.Resolve(date("2025-05-31"), nil)
	assert.Equal(t, 5.0, price)
}

func TestResolveRoomOverrideBeatsGlobal(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P101", 0)
	other := env.seedRoom("P102", 0)

	env.seedGlobalRate("2025-01-01", 5.0)
	env.seedRoomRate(room.ID, "2025-03-01", 6.0)

	assert.Equal(t, 6.0, env.rates.Resolve(date("2025-07-01"), &room.ID))
	// Phòng không có giá riêng rơi về giá chung
	assert.Equal(t, 5.0, env.rates.Resolve(date("2025-07-01"), &other.ID))
	// Trước ngày hiệu lực của giá riêng cũng rơi về giá chung
	assert.Equal(t, 5.0, env.rates.Resolve(date("2025-02-01"), &room.ID))
}

func TestResolveSameEffectiveDateLaterEntryWins(t *testing.T) {
	env := newTestEnv()
	env.seedGlobalRate("2025-01-01", 5.0)
	env.seedGlobalRate("2025-01-01", 5.8) // nhập sau, sửa giá nhập nhầm

	price := env.rates.Resolve(date("2025-02-01"), nil)
	assert.Equal(t, 5.8, price)
}

func TestResolveRoomRateInFutureFallsBackToDefault(t *testing.T) {
	env := newTestEnv()
	room := env.seedRoom("P201", 0)
	env.seedRoomRate(room.ID, "2026-01-01", 7.0)

	price := env.rates.Resolve(date("2025-06-15"), &room.ID)
	assert.Equal(t, constants.DefaultElectricityRate, price)
}
