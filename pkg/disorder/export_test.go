// 18 Mar 2026
// Export bits of the innards for testing.

package disorder

var ParseOut = (*CmdAnnotator).parse

func Gapless(s []byte) ([]byte, []int, error) { return gapless(s) }
