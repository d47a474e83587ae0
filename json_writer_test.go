package divitrek

import "testing"

func TestJsonObjectWriter_KeepsFieldOrder(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", 2)
	w.Append("a", 1)

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"b":2,"a":1}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_Optional(t *testing.T) {
	var w jsonObjectWriter
	w.Append("symbol", "AAPL")
	w.Optional("description", "")
	w.Optional("settleDate", Date{})
	w.Optional("price", USD(150))

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"symbol":"AAPL","price":{"currency":"USD","amount":150}}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_Embed(t *testing.T) {
	var w jsonObjectWriter
	w.Append("symbol", "AAPL")
	w.EmbedFrom(USD(5))

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"symbol":"AAPL","currency":"USD","amount":5}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_Empty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "{}" {
		t.Errorf("got %s, want {}", got)
	}
}
