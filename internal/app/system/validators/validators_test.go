package validators_test

import (
	"testing"

	"github.com/dalemusser/lawcrm/internal/app/store/docstore"
	"github.com/dalemusser/lawcrm/internal/app/system/validators"
	"github.com/dalemusser/lawcrm/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func props(t *testing.T, c docstore.Collection) (bson.M, bson.M) {
	t.Helper()
	js, ok := validators.For(c)["$jsonSchema"].(bson.M)
	if !ok {
		t.Fatalf("%s: missing $jsonSchema", c.Name())
	}
	p, ok := js["properties"].(bson.M)
	if !ok {
		t.Fatalf("%s: missing properties", c.Name())
	}
	return js, p
}

func TestFor_Customer(t *testing.T) {
	js, p := props(t, docstore.Customers)

	req := js["required"].(bson.A)
	if len(req) != 2 || req[0] != "name" || req[1] != "email" {
		t.Errorf("required: got %v", req)
	}
	phone := p["phone"].(bson.M)
	types, ok := phone["bsonType"].(bson.A)
	if !ok || len(types) != 2 || types[1] != "null" {
		t.Errorf("phone bsonType: got %v", phone["bsonType"])
	}
	status := p["status"].(bson.M)
	if len(status["enum"].(bson.A)) != 3 {
		t.Errorf("status enum: got %v", status["enum"])
	}
	if _, ok := p["email"].(bson.M)["format"]; ok {
		t.Error("email format must not be sent to the server")
	}
}

func TestFor_OrderItems(t *testing.T) {
	_, p := props(t, docstore.Orders)
	items := p["items"].(bson.M)
	elem, ok := items["items"].(bson.M)
	if !ok {
		t.Fatalf("items element schema missing: %v", items)
	}
	qty := elem["properties"].(bson.M)["quantity"].(bson.M)
	if qty["minimum"] != 1.0 {
		t.Errorf("quantity minimum: got %v", qty["minimum"])
	}
}

func TestFor_SettingsRange(t *testing.T) {
	js, p := props(t, docstore.Settings)
	if _, ok := js["required"]; ok {
		t.Errorf("settings has no required fields, got %v", js["required"])
	}
	tax := p["tax_rate"].(bson.M)
	if tax["minimum"] != 0.0 || tax["maximum"] != 1.0 {
		t.Errorf("tax_rate range: got %v..%v", tax["minimum"], tax["maximum"])
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}

	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		t.Fatalf("ListCollectionNames failed: %v", err)
	}
	have := map[string]bool{}
	for _, n := range names {
		have[n] = true
	}
	for _, c := range docstore.All() {
		if !have[c.Name()] {
			t.Errorf("collection %q not created", c.Name())
		}
	}
}

func TestEnsureAll_RejectsInvalidDocument(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	_, err := db.Collection("product").InsertOne(ctx, bson.M{"title": "X", "price": -5.0})
	if err == nil {
		t.Error("negative price accepted by collection validator")
	}
}
