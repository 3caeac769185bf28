package runtime

import "testing"

func TestNumberDisplay(t *testing.T) {
	tests := []struct {
		in   Number
		want string
	}{
		{Number(3), "3"},
		{Number(3.5), "3.5"},
		{Number(-0.5), "-0.5"},
	}
	for _, tt := range tests {
		if got := tt.in.Display(); got != tt.want {
			t.Errorf("Number(%v).Display() = %q, want %q", float64(tt.in), got, tt.want)
		}
	}
}

func TestTruthy(t *testing.T) {
	if Truthy(Nil{}) {
		t.Error("nil should be falsey")
	}
	if Truthy(Bool(false)) {
		t.Error("false should be falsey")
	}
	if !Truthy(Bool(true)) {
		t.Error("true should be truthy")
	}
	if !Truthy(Number(0)) {
		t.Error("0 should be truthy in Lox")
	}
	if !Truthy(String("")) {
		t.Error("empty string should be truthy in Lox")
	}
}

func TestEquals(t *testing.T) {
	if !Equals(Nil{}, Nil{}) {
		t.Error("nil should equal nil")
	}
	if Equals(Nil{}, Bool(false)) {
		t.Error("nil should not equal false")
	}
	if !Equals(Number(1), Number(1)) {
		t.Error("1 should equal 1")
	}
	if Equals(Number(1), String("1")) {
		t.Error("number should never equal string")
	}
	if !Equals(String("a"), String("a")) {
		t.Error("equal strings should be equal")
	}
}

func TestArithmetic(t *testing.T) {
	v, err := Add(Number(1), Number(2))
	if err != nil || v != Number(3) {
		t.Fatalf("1 + 2 = %v, %v", v, err)
	}

	v, err = Add(String("a"), String("b"))
	if err != nil || v != String("ab") {
		t.Fatalf("\"a\" + \"b\" = %v, %v", v, err)
	}

	_, err = Add(Number(1), String("b"))
	if err == nil {
		t.Fatal("expected an error adding a number and a string")
	}
	if err.Error() != "Operands must be two numbers or two strings." {
		t.Errorf("unexpected message: %s", err.Error())
	}

	_, err = Divide(Number(1), Number(0))
	if err == nil || err.Error() != "Division by zero." {
		t.Fatalf("expected division-by-zero error, got %v", err)
	}
}

func TestNegateRequiresNumber(t *testing.T) {
	if _, err := Negate(String("x")); err == nil {
		t.Fatal("expected an error negating a string")
	}
	v, err := Negate(Number(5))
	if err != nil || v != Number(-5) {
		t.Fatalf("-5 expected, got %v, %v", v, err)
	}
}
