// Program secretkit splits integer secrets into share documents and
// recovers them back from a quorum of shares.
package main

func main() {
	execute()
}
