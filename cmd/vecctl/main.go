// vecctl is a command-line tool for inspecting and managing vector files.
package main

func main() {
	execute()
}
