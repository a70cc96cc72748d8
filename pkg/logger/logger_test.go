package logger_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/PatiFroNati/shot-plot-app/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInitAndGet(t *testing.T) {
	Convey("Given an initialized logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("When getting the global logger", func() {
			l := logger.Get()

			Convey("Then it is usable at every level", func() {
				So(l, ShouldNotBeNil)

				ctx := context.Background()
				So(func() {
					l.Debug(ctx, "debug message")
					l.Info(ctx, "info message", logger.String("k", "v"))
					l.Warn(ctx, "warn message", logger.Int("n", 1))
					l.Error(ctx, "error message", logger.Error(errors.New("boom")))
				}, ShouldNotPanic)
			})
		})

		Convey("When deriving a named logger", func() {
			l := logger.Named("subsystem")

			Convey("Then it is independent and usable", func() {
				So(l, ShouldNotBeNil)
				So(func() { l.Info(context.Background(), "named message") }, ShouldNotPanic)
			})
		})

		Convey("When syncing", func() {
			So(logger.Sync(), ShouldBeNil)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given an initialized logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("When setting known levels", func() {
			for _, level := range []string{"debug", "info", "warn", "warning", "error", "DEBUG", " info "} {
				So(logger.SetLevelString(level), ShouldBeNil)
			}

			Convey("And an empty string means info", func() {
				So(logger.SetLevelString(""), ShouldBeNil)
			})
		})

		Convey("When setting an unknown level", func() {
			err := logger.SetLevelString("loud")

			Convey("Then it is rejected", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When setting a level directly", func() {
			So(func() { logger.SetLevel(slog.LevelWarn) }, ShouldNotPanic)
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		Convey("Then each carries its key and value", func() {
			So(logger.String("s", "v"), ShouldResemble, logger.Field{Key: "s", Value: "v"})
			So(logger.Int("i", 42), ShouldResemble, logger.Field{Key: "i", Value: 42})
			So(logger.Float64("f", 1.5), ShouldResemble, logger.Field{Key: "f", Value: 1.5})
			So(logger.Duration("d", time.Second), ShouldResemble, logger.Field{Key: "d", Value: time.Second})
			So(logger.Any("a", []int{1}), ShouldResemble, logger.Field{Key: "a", Value: []int{1}})

			err := errors.New("boom")
			So(logger.Error(err), ShouldResemble, logger.Field{Key: "error", Value: err})
		})
	})
}
