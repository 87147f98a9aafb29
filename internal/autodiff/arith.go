package autodiff

// Add returns x + y.
func (x Var) Add(y Var) Var {
	return x.t.binary(x.Val()+y.Val(), x, y, 1, 1)
}

// Sub returns x - y.
func (x Var) Sub(y Var) Var {
	return x.t.binary(x.Val()-y.Val(), x, y, 1, -1)
}

// Mul returns x * y.
func (x Var) Mul(y Var) Var {
	return x.t.lazy(kindMul, x.Val()*y.Val(), x, y)
}

// Div returns x / y.
func (x Var) Div(y Var) Var {
	return x.t.lazy(kindDiv, x.Val()/y.Val(), x, y)
}

// AddScalar returns x + c.
func (x Var) AddScalar(c float64) Var {
	return x.t.unary(x.Val()+c, x, 1)
}

// SubScalar returns x - c.
func (x Var) SubScalar(c float64) Var {
	return x.t.unary(x.Val()-c, x, 1)
}

// MulScalar returns x * c.
func (x Var) MulScalar(c float64) Var {
	return x.t.unary(x.Val()*c, x, c)
}

// DivScalar returns x / c.
func (x Var) DivScalar(c float64) Var {
	return x.t.unary(x.Val()/c, x, 1/c)
}

// RSub returns c - x.
func (x Var) RSub(c float64) Var {
	return x.t.unary(c-x.Val(), x, -1)
}

// RDiv returns c / x.
func (x Var) RDiv(c float64) Var {
	v := x.Val()
	val := c / v
	return x.t.unary(val, x, -val/v)
}

// Neg returns -x.
func (x Var) Neg() Var {
	return x.t.unary(-x.Val(), x, -1)
}

// Inv returns 1 / x.
func (x Var) Inv() Var {
	v := x.Val()
	return x.t.unary(1/v, x, -1/(v*v))
}

// Square returns x * x.
func (x Var) Square() Var {
	v := x.Val()
	return x.t.unary(v*v, x, 2*v)
}
