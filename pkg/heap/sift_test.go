package heap

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSiftUp(t *testing.T) {
	Convey("Given a seven element heap", t, func() {
		h, recs := ascending(7)

		Convey("When a leaf key drops below the root", func() {
			recs[7].key = 0
			h.siftUp(recs[7])
			h.rederiveRoot(recs[7])

			So(h.Min(), ShouldEqual, recs[7])
			So(h.Check(), ShouldBeTrue)
		})

		Convey("When a leaf key drops one level only", func() {
			recs[5].key = h.node(recs[5]).parent.key - 1
			h.siftUp(recs[5])
			h.rederiveRoot(recs[5])

			So(h.node(recs[5]).parent, ShouldEqual, recs[1])
			So(h.Check(), ShouldBeTrue)
		})

		Convey("When order already holds it does nothing", func() {
			h.siftUp(recs[6])

			So(h.Min(), ShouldEqual, recs[1])
			So(h.Check(), ShouldBeTrue)
		})
	})
}

func TestSiftDown(t *testing.T) {
	Convey("Given a seven element heap", t, func() {
		h, recs := ascending(7)

		Convey("When the root key grows past everything", func() {
			recs[1].key = 100
			h.siftDown(recs[1])
			h.rederiveRoot(recs[1])

			So(h.Min(), ShouldEqual, recs[2])
			So(h.node(recs[1]).left, ShouldBeNil)
			So(h.node(recs[1]).right, ShouldBeNil)
			So(h.Check(), ShouldBeTrue)
		})

		Convey("When the root key grows one level only", func() {
			recs[1].key = 4
			h.siftDown(recs[1])
			h.rederiveRoot(recs[1])

			So(h.Min(), ShouldEqual, recs[2])
			So(h.Check(), ShouldBeTrue)
		})
	})

	Convey("Given a two element heap", t, func() {
		h, recs := ascending(2)

		Convey("The single-child step compares only against the left", func() {
			recs[1].key = 10
			h.siftDown(recs[1])
			h.rederiveRoot(recs[1])

			So(h.Min(), ShouldEqual, recs[2])
			So(h.node(recs[2]).left, ShouldEqual, recs[1])
			So(h.node(recs[2]).right, ShouldBeNil)
			So(h.Check(), ShouldBeTrue)
		})
	})
}

func TestUpdate(t *testing.T) {
	Convey("Given a seven element heap", t, func() {
		h, recs := ascending(7)

		Convey("Update with an unchanged key leaves every link alone", func() {
			type links struct{ parent, left, right *rec }

			before := make(map[*rec]links, 7)
			for _, r := range recs[1:] {
				before[r] = links{r.node.parent, r.node.left, r.node.right}
			}

			h.Update(recs[4])

			for _, r := range recs[1:] {
				So(r.node.parent, ShouldEqual, before[r].parent)
				So(r.node.left, ShouldEqual, before[r].left)
				So(r.node.right, ShouldEqual, before[r].right)
			}
		})

		Convey("Update covers a key that moved down", func() {
			recs[2].key = 50
			h.Update(recs[2])

			So(h.Check(), ShouldBeTrue)
		})

		Convey("Update covers a key that moved up", func() {
			recs[6].key = 0
			h.Update(recs[6])

			So(h.Min(), ShouldEqual, recs[6])
			So(h.Check(), ShouldBeTrue)
		})
	})
}
