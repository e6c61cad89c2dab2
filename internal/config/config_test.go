package config_test

import (
	"testing"

	"github.com/okian/podium/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.MaxCardsPerBoard, convey.ShouldEqual, 500)
			convey.So(cfg.LongPressMS, convey.ShouldEqual, 500)
			convey.So(cfg.MovementSlop, convey.ShouldEqual, 10)
			convey.So(cfg.SlotHeight, convey.ShouldEqual, 64)
			convey.So(cfg.ShutdownTimeoutS, convey.ShouldEqual, 30)
		})
	})
}
