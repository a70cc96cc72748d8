package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/PatiFroNati/shot-plot-app/internal/domain/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given a valid catalog document", t, func() {
		doc := []byte(`{
			"targets": [
				{
					"type": "Test Target",
					"rings": [
						{"ring": "1", "diameter": 45.5, "points": 1, "color": "#FFFFFF"},
						{"ring": "10", "diameter": 0.5, "points": 10, "color": "#FFFFFF"}
					]
				},
				{
					"type": "Second Target",
					"rings": [
						{"ring": "10", "diameter": 11.5, "points": 10, "color": "#1A1A1A"}
					]
				}
			]
		}`)

		Convey("When parsing it", func() {
			cat, err := catalog.Parse(doc)

			Convey("Then targets are indexed by name", func() {
				So(err, ShouldBeNil)
				So(cat.Len(), ShouldEqual, 2)

				t1, err := cat.Lookup("Test Target")
				So(err, ShouldBeNil)
				So(t1.Rings, ShouldHaveLength, 2)
				So(t1.MaxDiameterMM(), ShouldEqual, 45.5)
			})

			Convey("And names preserve document order", func() {
				So(err, ShouldBeNil)
				So(cat.Names(), ShouldResemble, []string{"Test Target", "Second Target"})
			})
		})

		Convey("When looking up an unknown name", func() {
			cat, err := catalog.Parse(doc)
			So(err, ShouldBeNil)

			_, err = cat.Lookup("No Such Target")

			Convey("Then it fails with ErrNotFound", func() {
				So(errors.Is(err, catalog.ErrNotFound), ShouldBeTrue)
			})
		})
	})

	Convey("Given malformed documents", t, func() {
		Convey("When a target has no rings", func() {
			_, err := catalog.Parse([]byte(`{"targets": [{"type": "Empty", "rings": []}]}`))

			Convey("Then it fails with ErrInvalidSpec", func() {
				So(errors.Is(err, catalog.ErrInvalidSpec), ShouldBeTrue)
			})
		})

		Convey("When a diameter is not numeric", func() {
			_, err := catalog.Parse([]byte(`{"targets": [{"type": "Bad", "rings": [{"ring": "1", "diameter": "wide", "points": 1, "color": "#FFF"}]}]}`))

			Convey("Then it fails with ErrInvalidSpec", func() {
				So(errors.Is(err, catalog.ErrInvalidSpec), ShouldBeTrue)
			})
		})

		Convey("When points are not numeric", func() {
			_, err := catalog.Parse([]byte(`{"targets": [{"type": "Bad", "rings": [{"ring": "1", "diameter": 45.5, "points": "one", "color": "#FFF"}]}]}`))

			Convey("Then it fails with ErrInvalidSpec", func() {
				So(errors.Is(err, catalog.ErrInvalidSpec), ShouldBeTrue)
			})
		})

		Convey("When a diameter is non-positive", func() {
			_, err := catalog.Parse([]byte(`{"targets": [{"type": "Bad", "rings": [{"ring": "1", "diameter": 0, "points": 1, "color": "#FFF"}]}]}`))

			Convey("Then it fails with ErrInvalidSpec", func() {
				So(errors.Is(err, catalog.ErrInvalidSpec), ShouldBeTrue)
			})
		})

		Convey("When two rings share a diameter", func() {
			_, err := catalog.Parse([]byte(`{"targets": [{"type": "Bad", "rings": [
				{"ring": "1", "diameter": 45.5, "points": 1, "color": "#FFF"},
				{"ring": "2", "diameter": 45.5, "points": 2, "color": "#FFF"}
			]}]}`))

			Convey("Then it fails with ErrInvalidSpec", func() {
				So(errors.Is(err, catalog.ErrInvalidSpec), ShouldBeTrue)
			})
		})

		Convey("When two targets share a name", func() {
			_, err := catalog.Parse([]byte(`{"targets": [
				{"type": "Dup", "rings": [{"ring": "1", "diameter": 10, "points": 1, "color": "#FFF"}]},
				{"type": "Dup", "rings": [{"ring": "1", "diameter": 20, "points": 1, "color": "#FFF"}]}
			]}`))

			Convey("Then it fails with ErrInvalidSpec", func() {
				So(errors.Is(err, catalog.ErrInvalidSpec), ShouldBeTrue)
			})
		})

		Convey("When the document is not JSON", func() {
			_, err := catalog.Parse([]byte(`not json`))

			Convey("Then it fails with ErrInvalidSpec", func() {
				So(errors.Is(err, catalog.ErrInvalidSpec), ShouldBeTrue)
			})
		})

		Convey("When the document has no targets", func() {
			_, err := catalog.Parse([]byte(`{"targets": []}`))

			Convey("Then it fails with ErrInvalidSpec", func() {
				So(errors.Is(err, catalog.ErrInvalidSpec), ShouldBeTrue)
			})
		})
	})
}

func TestLoadEmbedded(t *testing.T) {
	Convey("Given no catalog path", t, func() {
		Convey("When loading", func() {
			cat, err := catalog.Load(context.Background(), "")

			Convey("Then the embedded ISSF targets are available", func() {
				So(err, ShouldBeNil)
				So(cat.Len(), ShouldEqual, 2)

				rifle, err := cat.Lookup("ISSF 10m Air Rifle Target")
				So(err, ShouldBeNil)
				So(rifle.Rings, ShouldHaveLength, 10)
				So(rifle.MaxDiameterMM(), ShouldEqual, 45.5)

				pistol, err := cat.Lookup("ISSF 10m Air Pistol Target")
				So(err, ShouldBeNil)
				So(pistol.MaxDiameterMM(), ShouldEqual, 155.5)
			})
		})
	})

	Convey("Given a missing file path", t, func() {
		Convey("When loading", func() {
			_, err := catalog.Load(context.Background(), "/no/such/file.json")

			Convey("Then it fails with ErrInvalidSpec", func() {
				So(errors.Is(err, catalog.ErrInvalidSpec), ShouldBeTrue)
			})
		})
	})
}
