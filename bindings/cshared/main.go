// Command cshared builds gaussblur as a C shared library so that scripting
// hosts can call it through their foreign-function interface:
//
//	go build -buildmode=c-shared -o libgaussblur.so ./bindings/cshared
//
// From Python, for example:
//
//	lib = ctypes.CDLL("./libgaussblur.so")
//	lib.gaussian_blur.restype = ctypes.c_void_p
//	ptr = lib.gaussian_blur(b"in.png", b"out.png")
//	path = ctypes.string_at(ptr).decode()
//	lib.gaussblur_free(ptr)
//
// An undecodable source terminates the host process.
package main

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// gaussian_blur returns a copy of destination allocated with malloc. The
// caller releases it with gaussblur_free.
//
//export gaussian_blur
func gaussian_blur(source, destination *C.char) *C.char {
	return C.CString(blurPaths(C.GoString(source), C.GoString(destination)))
}

//export gaussblur_free
func gaussblur_free(s *C.char) {
	C.free(unsafe.Pointer(s))
}

func main() {}
