package cordic

import (
	"github.com/lixenwraith/qmath/fixed"
)

// Iterations is the fixed number of CORDIC steps, one per table entry
const Iterations = 32

// tableFracBits is the internal precision of the rotation table (I4F60)
const tableFracBits = 60

// rotation holds one CORDIC step in raw I4F60 bits
type rotation struct {
	angle int64 // atan(2^-k) in radians
	cos   int64 // cos(atan(2^-k)), per-step length compensation
}

// circle is indexed by shift amount k
var circle = [Iterations]rotation{
	{905502432259640320, 815238614083298944},
	{534549298976576448, 1031204342808898688},
	{282441168888798112, 1118498150950604288},
	{143371547418228448, 1144018502608809088},
	{71963988336308048, 1150676280461235072},
	{36017075762092180, 1152358966635028224},
	{18012932708689206, 1152780792883053696},
	{9007016009513623, 1152886321845288960},
	{4503576721087964, 1152912708614486784},
	{2251796950380271, 1152919305589882880},
	{1125899548928888, 1152920954851426304},
	{562949908682076, 1152921367167918080},
	{281474971118251, 1152921470247110144},
	{140737487656277, 1152921496016912512},
	{70368744090283, 1152921502459363328},
	{35184372077909, 1152921504069976064},
	{17592186043051, 1152921504472629248},
	{8796093022037, 1152921504573292544},
	{4398046511083, 1152921504598458368},
	{2199023255549, 1152921504604749824},
	{1099511627776, 1152921504606322688},
	{549755813888, 1152921504606715904},
	{274877906944, 1152921504606814208},
	{137438953472, 1152921504606838784},
	{68719476736, 1152921504606844928},
	{34359738368, 1152921504606846464},
	{17179869184, 1152921504606846848},
	{8589934592, 1152921504606846976},
	{4294967296, 1152921504606846976},
	{2147483648, 1152921504606846976},
	{1073741824, 1152921504606846976},
	{536870912, 1152921504606846976},
}

// gainRaw is the product of all per-step cosines (~0.6072529350), I4F60
const gainRaw int64 = 700114967507363456

// Angle returns atan(2^-k) narrowed to Q32.32
func Angle(k int) fixed.Q64 { return fixed.FromRaw(circle[k].angle, tableFracBits) }

// StepCos returns cos(atan(2^-k)) narrowed to Q32.32
func StepCos(k int) fixed.Q64 { return fixed.FromRaw(circle[k].cos, tableFracBits) }

// Gain returns K, the total CORDIC gain correction
func Gain() fixed.Q64 { return fixed.FromRaw(gainRaw, tableFracBits) }
