package api

import "testing"

func TestWatchRedirectsToVideo(t *testing.T) {
	app := newTestApp(t, testWednesdayMorning)

	response, _ := getPage(t, app, "/watch/2/lunch", 303)
	if location := response.Header.Get("Location"); location != "https://www.youtube.com/watch?v=JvZpnujxMo4" {
		t.Fatalf("unexpected redirect %q", location)
	}
}

func TestWatchRejectsUnknownSlots(t *testing.T) {
	app := newTestApp(t, testWednesdayMorning)

	for _, path := range []string{"/watch/6/dinner", "/watch/14/lunch", "/watch/-1/lunch", "/watch/x/lunch", "/watch/2/brunch"} {
		getPage(t, app, path, 404)
	}
}

func TestParseDayIndex(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{raw: "0", want: 0, wantOK: true},
		{raw: "13", want: 13, wantOK: true},
		{raw: "14"},
		{raw: "-1"},
		{raw: "two"},
		{raw: ""},
	}

	for _, tc := range tests {
		got, ok := parseDayIndex(tc.raw)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("parseDayIndex(%q): expected %d/%t, got %d/%t", tc.raw, tc.want, tc.wantOK, got, ok)
		}
	}
}
