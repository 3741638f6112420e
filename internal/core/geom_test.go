package core

import "testing"

func TestRectIntersects(t *testing.T) {
	block := NewRect(220, 140, 60, 30)

	tests := []struct {
		name string
		ball Rect
		want bool
	}{
		{"ball inside block", NewRect(240, 145, 16, 16), true},
		{"ball across bottom edge", NewRect(242, 166, 16, 16), true},
		{"ball resting on top edge", NewRect(242, 124, 16, 16), false},
		{"ball touching left edge", NewRect(204, 150, 16, 16), false},
		{"ball touching right edge", NewRect(280, 150, 16, 16), false},
		{"one pixel into corner", NewRect(279, 169, 16, 16), true},
		{"ball far away", NewRect(600, 600, 16, 16), false},
		{"block inside wide rect", NewRect(0, 0, 1280, 960), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ball.Intersects(block); got != tc.want {
				t.Errorf("Intersects() = %v, expected %v", got, tc.want)
			}
			if got := block.Intersects(tc.ball); got != tc.want {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	paddle := NewRect(580, 926, 120, 20)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"center", 640, 936, true},
		{"top-left corner", 580, 926, true},
		{"right edge is outside", 700, 936, false},
		{"bottom edge is outside", 640, 946, false},
		{"above", 640, 925, false},
		{"left of paddle", 579, 936, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := paddle.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(40, 80, 60, 30)

	if r.Left() != 40 || r.Top() != 80 {
		t.Errorf("Left(), Top() = %d, %d, expected 40, 80", r.Left(), r.Top())
	}
	if r.Right() != 100 || r.Bottom() != 110 {
		t.Errorf("Right(), Bottom() = %d, %d, expected 100, 110", r.Right(), r.Bottom())
	}
	if cx, cy := r.Center(); cx != 70 || cy != 95 {
		t.Errorf("Center() = (%d, %d), expected (70, 95)", cx, cy)
	}

	// Odd sizes round the center toward the top-left
	odd := NewRect(0, 0, 15, 9)
	if cx, cy := odd.Center(); cx != 7 || cy != 4 {
		t.Errorf("Center() = (%d, %d), expected (7, 4)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestRectSetters(t *testing.T) {
	r := NewRect(0, 0, 100, 20)
	r.SetCenterX(640)
	r.SetBottom(946)

	if r.X != 590 || r.Y != 926 {
		t.Errorf("rect = (%d, %d), expected (590, 926)", r.X, r.Y)
	}

	r.SetCenter(50, 50)
	if r.CenterX() != 50 || r.CenterY() != 50 {
		t.Errorf("Center() = (%d, %d), expected (50, 50)", r.CenterX(), r.CenterY())
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in       float64
		expected int
	}{
		{1.4, 1},
		{1.5, 2},
		{-1.5, -2},
		{0, 0},
	}

	for _, tc := range tests {
		if got := Round(tc.in); got != tc.expected {
			t.Errorf("Round(%v) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
