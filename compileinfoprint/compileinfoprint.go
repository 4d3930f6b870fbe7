// compileinfoprint is imported for the side effect of printing the compileinfo
// to os.Stderr
package compileinfoprint

import (
	"os"

	"github.com/carbocation/gwaspower/compileinfo"
)

func init() {
	compileinfo.Fprint(os.Stderr)
}
