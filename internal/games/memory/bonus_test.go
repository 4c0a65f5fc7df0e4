package memory

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

func TestBonusLifecycle(t *testing.T) {
	b := NewBonus(BonusFreezeTime, config.BonusConfig{Initial: config.InitialNotUsed, Duration: 15 * time.Second})

	if b.State != BonusNotUsed {
		t.Fatalf("initial state = %v, expected not_used", b.State)
	}
	if _, ok := b.ActivatedAt(); ok {
		t.Error("ActivatedAt should be unset before use")
	}

	if !b.Press(t0) {
		t.Fatal("Press on not_used should be consumed")
	}
	if at, ok := b.ActivatedAt(); !ok || !at.Equal(t0) {
		t.Errorf("ActivatedAt() = %v, %v, expected %v", at, ok, t0)
	}
	if b.Press(t0.Add(time.Second)) {
		t.Error("Press while using should not be consumed")
	}

	if b.Update(t0.Add(14 * time.Second)) {
		t.Error("bonus expired early")
	}
	if got := b.Left(t0.Add(14 * time.Second)); got != time.Second {
		t.Errorf("Left() = %v, expected 1s", got)
	}
	if !b.Update(t0.Add(15 * time.Second)) {
		t.Error("bonus should expire once the duration has elapsed")
	}
	if b.State != BonusUsed {
		t.Errorf("state = %v, expected used", b.State)
	}
	if _, ok := b.ActivatedAt(); ok {
		t.Error("ActivatedAt should be cleared after use")
	}
	if b.Press(t0.Add(20 * time.Second)) {
		t.Error("used bonus should not be consumed")
	}
}

func TestBonusLockedUntilUnlocked(t *testing.T) {
	b := NewBonus(BonusExtraTime, config.BonusConfig{Initial: config.InitialNotActive, Grant: 15 * time.Second})

	if b.Press(t0) {
		t.Error("locked bonus should not be consumed")
	}
	if !b.Unlock() {
		t.Error("Unlock should move not_active to not_used")
	}
	if b.Unlock() {
		t.Error("second Unlock should be a no-op")
	}
	if !b.Press(t0) {
		t.Error("unlocked bonus should be consumed")
	}

	b.Reset()
	if b.State != BonusNotActive {
		t.Errorf("Reset state = %v, expected not_active", b.State)
	}
}

func TestBonusClickBounds(t *testing.T) {
	b := NewBonus(BonusRevealHint, config.BonusConfig{Initial: config.InitialNotUsed})
	b.Bounds = core.NewRect(10, 10, 5, 3)

	if b.Click(0, 0, t0) {
		t.Error("click outside the button should not be consumed")
	}
	if !b.Click(12, 11, t0) {
		t.Error("click inside the button should be consumed")
	}
}

func TestParseBonusKind(t *testing.T) {
	for _, k := range BonusKinds {
		got, err := ParseBonusKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseBonusKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseBonusKind("teleport"); err == nil {
		t.Error("ParseBonusKind should reject unknown names")
	}
}
