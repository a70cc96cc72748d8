package simulate

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/PatiFroNati/shot-plot-app/internal/adapters/http/api"
	service "github.com/PatiFroNati/shot-plot-app/internal/app"
	"github.com/PatiFroNati/shot-plot-app/internal/domain/types"
	"github.com/PatiFroNati/shot-plot-app/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestGenerateClicks(t *testing.T) {
	Convey("Given a seeded RNG", t, func() {
		rng := rand.New(rand.NewSource(42)) //nolint:gosec // deterministic test input

		Convey("When generating clicks", func() {
			clicks := generateClicks(rng, 200, 800)

			Convey("Then every click lands on the canvas", func() {
				So(clicks, ShouldHaveLength, 200)
				for _, cl := range clicks {
					So(cl.X, ShouldBeGreaterThanOrEqualTo, 0)
					So(cl.X, ShouldBeLessThan, 800)
					So(cl.Y, ShouldBeGreaterThanOrEqualTo, 0)
					So(cl.Y, ShouldBeLessThan, 800)
				}
			})
		})

		Convey("When generating twice from the same seed", func() {
			a := generateClicks(rand.New(rand.NewSource(7)), 50, 800) //nolint:gosec // deterministic test input
			b := generateClicks(rand.New(rand.NewSource(7)), 50, 800) //nolint:gosec // deterministic test input

			Convey("Then the sequences are identical", func() {
				So(a, ShouldResemble, b)
			})
		})
	})
}

func TestVerifier(t *testing.T) {
	Convey("Given a verifier on the embedded air rifle target", t, func() {
		ctx := context.Background()
		cfg := &Config{CanvasPX: 800}
		v, err := newVerifier(ctx, cfg, "ISSF 10m Air Rifle Target")
		So(err, ShouldBeNil)

		Convey("When the service result matches local scoring", func() {
			cl := click{X: 400, Y: 400}
			err := v.verify(ctx, cl, types.Shot{Index: 1, Score: 10, XMM: 0, YMM: 0})

			Convey("Then verification passes", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When the score disagrees", func() {
			cl := click{X: 400, Y: 400}
			err := v.verify(ctx, cl, types.Shot{Index: 1, Score: 9, XMM: 0, YMM: 0})

			Convey("Then verification fails", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "score mismatch")
			})
		})

		Convey("When the offsets disagree beyond tolerance", func() {
			cl := click{X: 400, Y: 400}
			err := v.verify(ctx, cl, types.Shot{Index: 1, Score: 10, XMM: 0.5, YMM: 0})

			Convey("Then verification fails", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "offset mismatch")
			})
		})

		Convey("When the target is unknown", func() {
			_, err := newVerifier(ctx, cfg, "No Such Target")

			Convey("Then construction fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestRunAgainstLiveService(t *testing.T) {
	Convey("Given a running service behind httptest", t, func() {
		ctx := context.Background()
		svc := service.New()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		mux := http.NewServeMux()
		api.NewServer(svc, svc).Register(ctx, mux)
		srv := httptest.NewServer(mux)
		defer srv.Close()

		Convey("When running a seeded simulation", func() {
			stats, err := Run(ctx, &Config{
				BaseURL:  srv.URL,
				NumShots: 25,
				CanvasPX: 800,
				Timeout:  5 * time.Second,
				Seed:     1,
			})

			Convey("Then every shot verifies against local scoring", func() {
				So(err, ShouldBeNil)
				So(stats.ShotsFired, ShouldEqual, 25)
				So(stats.ShotsMatched, ShouldEqual, 25)
				So(stats.ShotsMismatch, ShouldEqual, 0)
			})
		})

		Convey("When the canvas assumption is wrong", func() {
			_, err := Run(ctx, &Config{
				BaseURL:  srv.URL,
				NumShots: 1,
				CanvasPX: 400,
				Timeout:  5 * time.Second,
				Seed:     1,
			})

			Convey("Then the run aborts before firing", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "canvas mismatch")
			})
		})

		Convey("When the service is unreachable", func() {
			_, err := Run(ctx, &Config{
				BaseURL:  "http://127.0.0.1:1",
				NumShots: 1,
				CanvasPX: 800,
				Timeout:  time.Second,
				Seed:     1,
			})

			Convey("Then the health check fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
