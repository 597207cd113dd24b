package drawing

import (
	"testing"

	"github.com/vortex/go-hwp/pkg/hwpx/oxml"
)

func TestDecodeCommon(t *testing.T) {
	xml := []byte(`<hp:rect xmlns:hp="http://www.hancom.co.kr/hwpml/2011/paragraph">
  <hp:sz width="1000" height="500" widthRelTo="ABSOLUTE" heightRelTo="ABSOLUTE"/>
  <hp:pos treatAsChar="0" horzRelTo="PARA" vertRelTo="PARA" horzOffset="10" vertOffset="20"/>
  <hp:outMargin left="5" right="5" top="5" bottom="5"/>
  <hp:caption side="BOTTOM">Figure 1</hp:caption>
  <hp:shapeComment>a rectangle</hp:shapeComment>
</hp:rect>`)
	el, err := oxml.Parse(xml)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	c := Decode(el)
	if c.Size == nil || c.Size.Width != 1000 || c.Size.Height != 500 {
		t.Fatalf("unexpected size: %+v", c.Size)
	}
	if c.Position == nil || c.Position.X != 10 || c.Position.Y != 20 {
		t.Fatalf("unexpected position: %+v", c.Position)
	}
	if c.OutsideMargin == nil || c.OutsideMargin.Left != 5 {
		t.Fatalf("unexpected margin: %+v", c.OutsideMargin)
	}
	if c.Caption == nil || c.Caption.Side != "BOTTOM" || c.Caption.Text != "Figure 1" {
		t.Fatalf("unexpected caption: %+v", c.Caption)
	}
	if c.ShapeComment != "a rectangle" {
		t.Fatalf("ShapeComment = %q", c.ShapeComment)
	}
}

func TestDecodeCommonMissingChildren(t *testing.T) {
	xml := []byte(`<hp:rect xmlns:hp="http://www.hancom.co.kr/hwpml/2011/paragraph"/>`)
	el, err := oxml.Parse(xml)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	c := Decode(el)
	if c.Size != nil || c.Position != nil || c.OutsideMargin != nil || c.Caption != nil {
		t.Fatalf("expected all nil for element with no drawing children: %+v", c)
	}
}
