package cmd

import (
	"fmt"
)

const banner = `
  _   _       _          __  __            _
 | \ | |     (_)        |  \/  |          | |
 |  \| | __ _ _ _ __ __ | \  / | __ _ _ __| |_
 | .  _ |/ _  | | '__/ _  | |\/| |/ _  | '__| __|
 | |\  | (_| | | | | (_| | |  | | (_| | |  | |_
 |_| \_|\__,_|_|_|  \__,_|_|  |_|\__,_|_|   \__|

`

func printBanner() {
	fmt.Printf("\x1b[32m%s\x1b[0m", banner)
	fmt.Printf("\x1b[33m  Cryptocurrency Storefront - Version %s\x1b[0m\n\n", Version)
}
