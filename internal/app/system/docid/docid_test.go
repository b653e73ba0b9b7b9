package docid_test

import (
	"errors"
	"testing"

	"github.com/dalemusser/lawcrm/internal/app/system/docid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for i := 0; i < 50; i++ {
		s := primitive.NewObjectID().Hex()
		id, err := docid.Encode(s)
		if err != nil {
			t.Fatalf("Encode(%q): %v", s, err)
		}
		if got := docid.Decode(id); got != s {
			t.Fatalf("Decode(Encode(%q)) = %q", s, got)
		}
	}
}

func TestEncode_Invalid(t *testing.T) {
	valid := primitive.NewObjectID().Hex()
	tests := []string{
		"",
		"abc",
		"not-an-object-id-at-all!",
		valid[:23],
		valid + "0",
		"507F1F77BCF86CD799439011", // uppercase is not canonical
		"zzzzzzzzzzzzzzzzzzzzzzzz",
		" " + valid[1:],
	}
	for _, s := range tests {
		if _, err := docid.Encode(s); !errors.Is(err, docid.ErrInvalidIdentifier) {
			t.Errorf("Encode(%q): got %v, want ErrInvalidIdentifier", s, err)
		}
	}
}

func TestPublish(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := bson.M{"_id": oid, "name": "Ada"}

	out := docid.Publish(doc)

	if _, ok := out["_id"]; ok {
		t.Error("expected _id to be removed")
	}
	if out["id"] != oid.Hex() {
		t.Errorf("id: got %v, want %q", out["id"], oid.Hex())
	}
	if out["name"] != "Ada" {
		t.Errorf("name: got %v", out["name"])
	}
	if _, ok := doc["_id"]; !ok {
		t.Error("input document must not be modified")
	}
}

func TestPublish_NoID(t *testing.T) {
	out := docid.Publish(bson.M{"name": "x"})
	if _, ok := out["id"]; ok {
		t.Error("expected no id field when the document has no _id")
	}
}
