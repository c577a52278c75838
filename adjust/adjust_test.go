package adjust

import (
	"testing"

	"github.com/goki/kage/line"
)

func strokeFromRecord(t *testing.T, record string) line.Stroke {
	t.Helper()
	l := line.New(record)
	if l.Kind != line.KindStroke {
		t.Fatalf("record %q did not parse as a stroke", record)
	}
	return l.Stroke
}

func TestAdjustStrokesPreservesCount(t *testing.T) {
	strokes := []line.Stroke{
		strokeFromRecord(t, "1:0:0:50:50:50:150:0:0:0:0"),
		strokeFromRecord(t, "1:0:0:0:100:100:100:0:0:0:0"),
	}
	out := AdjustStrokes(DefaultConstants(), strokes)
	if len(out) != 2 {
		t.Fatalf("got %d adjustments", len(out))
	}
}

func TestAdjustHaneIncreasesFlickNearVerticalStroke(t *testing.T) {
	strokes := []line.Stroke{
		strokeFromRecord(t, "1:0:4:50:50:50:150:0:0:0:0"),
		strokeFromRecord(t, "1:0:0:40:0:40:200:0:0:0:0"),
	}
	out := AdjustStrokes(DefaultConstants(), strokes)
	if out[0].FlickAdjustment <= 0 {
		t.Fatalf("expected a positive flick adjustment near a vertical stroke, got %v", out[0].FlickAdjustment)
	}
}

func TestAdjustKirikuchiDetectsSlashThroughHorizontal(t *testing.T) {
	strokes := []line.Stroke{
		strokeFromRecord(t, "1:0:0:10:50:190:50:0:0:0:0"),
		strokeFromRecord(t, "2:32:0:150:50:100:150:0:0:0:0"),
	}
	out := AdjustStrokes(DefaultConstants(), strokes)
	if out[1].SlashAdjustment != 1.0 {
		t.Fatalf("expected slash_adjustment=1, got %v", out[1].SlashAdjustment)
	}
}
