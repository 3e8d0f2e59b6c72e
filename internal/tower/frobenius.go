package tower

import "github.com/go-bn254/bn254/internal/field"

// Frobenius coefficients for the BN254 tower. An Fq12 element
// c00 + c01*v + c02*v^2 + (c10 + c11*v + c12*v^2)*w maps under x->x^q
// to conj(c_ij) scaled by xi^(k*(q-1)/6) for the k matching each
// coefficient's position (k=1 for c10, 2 for c01, 3 for c11, 4 for
// c02, 5 for c12). Squaring and cubing the Frobenius use the
// analogous constants for q^2 and q^3; conjugation is skipped for q^2
// since conjugation composed with itself is the identity.
//
// frobGamma1[k-1] = xi^(k*(q-1)/6), and likewise for frobGamma2 (q^2)
// and frobGamma3 (q^3).
var (
	frobGamma1 = [5]Fq2{
		fq2FromDecimal(
			"8376118865763821496583973867626364092589906065868298776909617916018768340080",
			"16469823323077808223889137241176536799009286646108169935659301613961712198316"),
		fq2FromDecimal(
			"21575463638280843010398324269430826099269044274347216827212613867836435027261",
			"10307601595873709700152284273816112264069230130616436755625194854815875713954"),
		fq2FromDecimal(
			"2821565182194536844548159561693502659359617185244120367078079554186484126554",
			"3505843767911556378687030309984248845540243509899259641013678093033130930403"),
		fq2FromDecimal(
			"2581911344467009335267311115468803099551665605076196740867805258568234346338",
			"19937756971775647987995932169929341994314640652964949448313374472400716661030"),
		fq2FromDecimal(
			"685108087231508774477564247770172212460312782337200605669322048753928464687",
			"8447204650696766136447902020341177575205426561248465145919723016860428151883"),
	}

	frobGamma2 = [5]Fq2{
		fq2FromDecimal("21888242871839275220042445260109153167277707414472061641714758635765020556617", "0"),
		fq2FromDecimal("21888242871839275220042445260109153167277707414472061641714758635765020556616", "0"),
		fq2FromDecimal("21888242871839275222246405745257275088696311157297823662689037894645226208582", "0"),
		fq2FromDecimal("2203960485148121921418603742825762020974279258880205651966", "0"),
		fq2FromDecimal("2203960485148121921418603742825762020974279258880205651967", "0"),
	}

	frobGamma3 = [5]Fq2{
		fq2FromDecimal(
			"11697423496358154304825782922584725312912383441159505038794027105778954184319",
			"303847389135065887422783454877609941456349188919719272345083954437860409601"),
		fq2FromDecimal(
			"3772000881919853776433695186713858239009073593817195771773381919316419345261",
			"2236595495967245188281701248203181795121068902605861227855261137820944008926"),
		fq2FromDecimal(
			"19066677689644738377698246183563772429336693972053703295610958340458742082029",
			"18382399103927718843559375435273026243156067647398564021675359801612095278180"),
		fq2FromDecimal(
			"5324479202449903542726783395506214481928257762400643279780343368557297135718",
			"16208900380737693084919495127334387981393726419856888799917914180988844123039"),
		fq2FromDecimal(
			"8941241848238582420466759817324047081148088512956452953208002715982955420483",
			"10338197737521362862238855242243140895517409139741313354160881284257516364953"),
	}
)

// fq2FromDecimal builds an Fq2 constant from two decimal literals,
// panicking on malformed input since these are fixed at package init.
func fq2FromDecimal(a0, a1 string) Fq2 {
	x, err := field.FqFromDecimal(a0)
	if err != nil {
		panic("tower: invalid frobenius constant: " + a0)
	}
	y, err := field.FqFromDecimal(a1)
	if err != nil {
		panic("tower: invalid frobenius constant: " + a1)
	}
	return Fq2{A0: x, A1: y}
}
