package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/pr-poehali-dev/major-registration-portal/internal/dependencies/mocks"
)

type StorageSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.storage = New(s.clock, time.Hour)
	s.ctx = context.Background()
}

func (s *StorageSuite) TestGetItemsUnknownDevice() {
	items, err := s.storage.GetItems(s.ctx, "device-1")
	s.Require().NoError(err)
	s.Empty(items)
}

func (s *StorageSuite) TestSetAndGetItems() {
	err := s.storage.SetItems(s.ctx, "device-1", map[string]string{
		"currentView":  "auth",
		"selectedRole": "player",
	})
	s.Require().NoError(err)

	items, err := s.storage.GetItems(s.ctx, "device-1")
	s.Require().NoError(err)
	s.Equal(map[string]string{"currentView": "auth", "selectedRole": "player"}, items)
}

func (s *StorageSuite) TestSetItemsMerges() {
	_ = s.storage.SetItems(s.ctx, "device-1", map[string]string{"a": "1", "b": "2"})
	_ = s.storage.SetItems(s.ctx, "device-1", map[string]string{"b": "3"})

	items, _ := s.storage.GetItems(s.ctx, "device-1")
	s.Equal(map[string]string{"a": "1", "b": "3"}, items)
}

func (s *StorageSuite) TestDevicesAreIsolated() {
	_ = s.storage.SetItems(s.ctx, "device-1", map[string]string{"a": "1"})
	_ = s.storage.SetItems(s.ctx, "device-2", map[string]string{"a": "2"})

	items, _ := s.storage.GetItems(s.ctx, "device-1")
	s.Equal("1", items["a"])
	items, _ = s.storage.GetItems(s.ctx, "device-2")
	s.Equal("2", items["a"])
}

func (s *StorageSuite) TestReturnedMapIsACopy() {
	_ = s.storage.SetItems(s.ctx, "device-1", map[string]string{"a": "1"})

	items, _ := s.storage.GetItems(s.ctx, "device-1")
	items["a"] = "changed"

	items, _ = s.storage.GetItems(s.ctx, "device-1")
	s.Equal("1", items["a"])
}

func (s *StorageSuite) TestRemoveItems() {
	_ = s.storage.SetItems(s.ctx, "device-1", map[string]string{"a": "1", "b": "2"})

	err := s.storage.RemoveItems(s.ctx, "device-1", "a", "missing")
	s.Require().NoError(err)

	items, _ := s.storage.GetItems(s.ctx, "device-1")
	s.Equal(map[string]string{"b": "2"}, items)
}

func (s *StorageSuite) TestRemoveLastItemForgetsDevice() {
	_ = s.storage.SetItems(s.ctx, "device-1", map[string]string{"a": "1"})
	_ = s.storage.RemoveItems(s.ctx, "device-1", "a")
	s.Equal(0, s.storage.DeviceCount())
}

func (s *StorageSuite) TestRemoveItemsUnknownDevice() {
	s.NoError(s.storage.RemoveItems(s.ctx, "device-1", "a"))
}

func (s *StorageSuite) TestIdleDeviceExpires() {
	_ = s.storage.SetItems(s.ctx, "device-1", map[string]string{"a": "1"})

	s.clock.Advance(59 * time.Minute)
	items, _ := s.storage.GetItems(s.ctx, "device-1")
	s.Equal("1", items["a"])

	s.clock.Advance(2 * time.Minute)
	items, _ = s.storage.GetItems(s.ctx, "device-1")
	s.Empty(items)
}

func (s *StorageSuite) TestWriteRefreshesExpiry() {
	_ = s.storage.SetItems(s.ctx, "device-1", map[string]string{"a": "1"})
	s.clock.Advance(50 * time.Minute)
	_ = s.storage.SetItems(s.ctx, "device-1", map[string]string{"b": "2"})
	s.clock.Advance(50 * time.Minute)

	items, _ := s.storage.GetItems(s.ctx, "device-1")
	s.Equal(map[string]string{"a": "1", "b": "2"}, items)
}

func (s *StorageSuite) TestWriteAfterExpiryStartsFresh() {
	_ = s.storage.SetItems(s.ctx, "device-1", map[string]string{"a": "1"})
	s.clock.Advance(2 * time.Hour)
	_ = s.storage.SetItems(s.ctx, "device-1", map[string]string{"b": "2"})

	items, _ := s.storage.GetItems(s.ctx, "device-1")
	s.Equal(map[string]string{"b": "2"}, items)
}

func (s *StorageSuite) TestSweep() {
	_ = s.storage.SetItems(s.ctx, "device-1", map[string]string{"a": "1"})
	s.clock.Advance(2 * time.Hour)
	_ = s.storage.SetItems(s.ctx, "device-2", map[string]string{"a": "1"})

	s.Equal(1, s.storage.Sweep())
	s.Equal(1, s.storage.DeviceCount())
}

func (s *StorageSuite) TestZeroTTLNeverExpires() {
	store := New(s.clock, 0)
	_ = store.SetItems(s.ctx, "device-1", map[string]string{"a": "1"})
	s.clock.Advance(24 * 365 * time.Hour)

	items, _ := store.GetItems(s.ctx, "device-1")
	s.Equal("1", items["a"])
}
