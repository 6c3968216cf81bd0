package catalog

// builtinDangerous lists lower-cased function names commonly seen in
// process injection, persistence, C2 traffic, and payload staging.
var builtinDangerous = []string{
	"createremotethread",
	"writeprocessmemory",
	"virtualalloc",
	"virtualallocex",
	"virtualprotect",
	"setunhandledexceptionfilter",
	"setwindowshookex",
	"regcreatekeyexa",
	"regcreatekeyexw",
	"regsetvalueexa",
	"getprocaddress",
	"loadlibrary",
	"internetconnecta",
	"httpsendrequesta",
	"httpendrequesta",
	"urldownloadtofile",
	"winexec",
	"shellexecutea",
	"isdebuggerpresent",
	"cryptencrypt",
	"cryptdecrypt",
}

// builtinLibraries is the curated annotation catalog, keyed by lower-cased
// library file name. It is deliberately not comprehensive; unknown
// libraries and functions are reported without a description.
var builtinLibraries = map[string]Library{
	"kernel32.dll": {
		Description: "Provides core system functions such as memory management, process/thread creation, file I/O, and synchronization.",
		APIs: map[string]string{
			"createfile":                "Creates or opens a file, device, or I/O resource and returns a handle.",
			"readfile":                  "Reads data from an open file or I/O device into a buffer.",
			"writefile":                 "Writes data from a buffer to an open file or I/O device.",
			"closehandle":               "Closes an open object handle and releases its resources.",
			"virtualalloc":              "Reserves or commits a region of pages in the virtual address space.",
			"virtualallocex":            "Reserves or commits memory in the address space of another process.",
			"virtualprotect":            "Changes the protection on a region of committed pages.",
			"virtualfree":               "Frees or decommits a region of pages in the virtual address space.",
			"getprocaddress":            "Retrieves the address of an exported function or variable from a DLL.",
			"loadlibrary":               "Loads the specified DLL into the process's address space.",
			"createthread":              "Creates a new thread within the calling process.",
			"createremotethread":        "Creates a thread that runs in the address space of another process.",
			"writeprocessmemory":        "Writes data to an area of memory in a specified process.",
			"readprocessmemory":         "Reads data from an area of memory in a specified process.",
			"createprocess":             "Creates a new process and its primary thread.",
			"openprocess":               "Opens an existing process with specified access rights.",
			"terminateprocess":          "Forcibly terminates a specified process and its threads.",
			"suspendthread":             "Suspends the execution of a specified thread.",
			"resumethread":              "Resumes a suspended thread.",
			"waitforsingleobject":       "Waits until a specified object is in the signaled state.",
			"isdebuggerpresent":         "Determines whether the calling process is being debugged.",
			"winexec":                   "Runs the specified application (legacy process launch).",
			"getlasterror":              "Retrieves the calling thread's last error code.",
			"getmodulehandle":           "Retrieves a handle to a module that is already loaded.",
			"getcurrentprocess":         "Returns a pseudo-handle for the current process.",
			"getcurrentthread":          "Returns a pseudo-handle for the current thread.",
			"exitprocess":               "Terminates the current process and all its threads.",
			"exitthread":                "Terminates the calling thread and returns an exit code.",
			"sleep":                     "Suspends the execution of the current thread for a specified time interval.",
			"findfirstfile":             "Initiates a search for files and directories matching a specified pattern.",
			"findnextfile":              "Continues a file search from a previous FindFirstFile call.",
			"findclose":                 "Closes the search handle opened by FindFirstFile.",
			"deletefile":                "Deletes a file from the file system.",
			"copyfile":                  "Copies an existing file to a new file.",
			"movefile":                  "Moves or renames a file or directory.",
			"createmutex":               "Creates or opens a mutex object for synchronizing access to shared resources.",
			"waitformultipleobjects":    "Waits until one or more specified objects are in the signaled state.",
			"createevent":               "Creates or opens an event object for synchronization purposes.",
			"setevent":                  "Sets the specified event object to the signaled state.",
			"resetevent":                "Resets the specified event object to the non-signaled state.",
			"createfilemapping":         "Creates a file mapping object for shared memory between processes.",
			"mapviewoffile":             "Maps a view of a file mapping into the address space of the calling process.",
			"unmapviewoffile":           "Unmaps a mapped view of a file from the process's address space.",
			"getsystemtime":             "Retrieves the current system date and time in UTC.",
			"setsystemtime":             "Sets the system time and date, requiring appropriate privileges.",
			"queryperformancecounter":   "Retrieves the current value of the high-resolution performance counter.",
			"queryperformancefrequency": "Retrieves the frequency of the high-resolution performance counter.",
			"createnamedpipe":           "Creates an instance of a named pipe for inter-process communication.",
			"connectnamedpipe":          "Connects the server end of a named pipe to a client process.",
			"disconnectnamedpipe":       "Disconnects the server end of a named pipe from a client.",
			"gettickcount":              "Retrieves the number of milliseconds that have elapsed since the system was started.",
			"globalalloc":               "Allocates memory from the global heap.",
			"globalfree":                "Frees memory allocated from the global heap.",
			"heapalloc":                 "Allocates a block of memory from a specified heap.",
			"heapfree":                  "Frees a memory block allocated from a specified heap.",
			"getmodulefilename":         "Retrieves the fully qualified path for the file that contains the specified module.",
			"getfilesize":               "Retrieves the size of the specified file in bytes.",
			"setfilepointer":            "Moves the file pointer of an open file to a specified position.",
			"setunhandledexceptionfilter": "Replaces the top-level exception handler of the process.",
		},
	},
	"user32.dll": {
		Description: "Handles the Windows user interface including window management, message dispatching, and user input.",
		APIs: map[string]string{
			"createwindowex":      "Creates an overlapped, pop-up, or child window with extended styles.",
			"defwindowproc":       "Provides default processing for window messages not handled by the window procedure.",
			"dispatchmessage":     "Dispatches a message to a window procedure.",
			"messagebox":          "Displays a modal dialog box with a message, icons, and buttons.",
			"getmessage":          "Retrieves a message from the calling thread's message queue.",
			"translatemessage":    "Translates virtual-key messages into character messages.",
			"destroywindow":       "Destroys the specified window and releases its resources.",
			"getclientrect":       "Retrieves the coordinates of a window's client area.",
			"enablewindow":        "Enables or disables input to a specified window.",
			"setfocus":            "Sets the keyboard focus to a specified window.",
			"getfocus":            "Retrieves the handle to the window that has the keyboard focus.",
			"postmessage":         "Posts a message to the message queue of a specified window.",
			"sendmessage":         "Sends a message to a window and waits for it to be processed.",
			"setforegroundwindow": "Brings the specified window to the foreground.",
			"showwindow":          "Sets the show state (minimized, maximized, etc.) of a window.",
			"updatewindow":        "Forces a window to repaint immediately.",
			"getwindowtext":       "Retrieves the title bar text of a window.",
			"setwindowtext":       "Changes the title bar text of a window.",
			"getsystemmetrics":    "Retrieves various system metrics and configuration settings, such as screen dimensions.",
			"setcursorpos":        "Moves the cursor to the specified screen coordinates.",
			"getcursorpos":        "Retrieves the current position of the cursor on the screen.",
			"registerclass":       "Registers a window class for subsequent window creation.",
			"setwindowpos":        "Changes the size, position, and Z order of a window.",
			"iswindow":            "Determines whether the specified window handle identifies an existing window.",
			"peekmessage":         "Checks the message queue for a message without removing it, optionally retrieving the message.",
			"registerhotkey":      "Registers a system-wide hot key that can trigger specific actions when pressed.",
			"unregisterhotkey":    "Unregisters a system-wide hot key, freeing it for other uses.",
			"getdc":               "Retrieves a handle to a device context (DC) for the client area of a specified window.",
			"releasedc":           "Releases a device context (DC), freeing it for use by other applications.",
			"setwindowlong":       "Changes an attribute of the specified window (e.g., style or window procedure pointer).",
			"getwindowlong":       "Retrieves information about the specified window, such as styles or extended attributes.",
			"setwindowshookex":    "Installs an application-defined hook procedure into a hook chain (keylogging staple).",
			"getasynckeystate":    "Determines whether a key is up or down at the time of the call.",
			"getkeystate":         "Retrieves the status of a virtual key.",
			"flashwindow":         "Flashes the specified window to draw the user's attention.",
			"findwindow":          "Retrieves a handle to the top-level window matching class name and window name.",
		},
	},
	"advapi32.dll": {
		Description: "Offers functions for security, registry access, and service management.",
		APIs: map[string]string{
			"regopenkeyex":             "Opens a registry key with the desired access rights.",
			"regqueryvalueex":          "Retrieves the type and data for a specified registry value.",
			"regsetvalueex":            "Sets the data for a specified registry value.",
			"regsetvalueexa":           "Sets the data for a specified registry value (ANSI).",
			"regenumkeyex":             "Enumerates subkeys of an open registry key.",
			"regenumvalue":             "Enumerates the values of an open registry key.",
			"regclosekey":              "Closes a handle to a registry key.",
			"regcreatekeyex":           "Creates or opens a registry key with specified options.",
			"regcreatekeyexa":          "Creates or opens a registry key with specified options (ANSI).",
			"regcreatekeyexw":          "Creates or opens a registry key with specified options (Unicode).",
			"regdeletekey":             "Deletes a specified registry key.",
			"regdeletevalue":           "Deletes a value from a registry key.",
			"regqueryinfokey":          "Retrieves information about a registry key.",
			"lookupprivilegevalue":     "Retrieves the LUID for a specified privilege.",
			"adjusttokenprivileges":    "Enables or disables privileges in an access token.",
			"openprocesstoken":         "Opens the access token associated with a process.",
			"duplicatehandle":          "Duplicates an object handle for use in another process.",
			"regloadkey":               "Loads registry data from a file into a registry key.",
			"regunloadkey":             "Unloads registry data from a registry key.",
			"startservice":             "Starts a service.",
			"openservice":              "Opens an existing service.",
			"openscmanager":            "Opens a handle to the service control manager on the specified computer.",
			"createservice":            "Creates a service object and adds it to the service control manager database.",
			"deleteservice":            "Marks a service for deletion from the service control manager database.",
			"controlservice":           "Sends a control code to a service to perform a specific action.",
			"closeservicehandle":       "Closes a handle to a service control manager or service object.",
			"queryservicestatus":       "Retrieves the current status of a specified service.",
			"setservicestatus":         "Sets the current status of a service, reporting its state to the service control manager.",
			"startservicectrldispatcher": "Connects the main thread of a service process to the service control manager for message handling.",
			"impersonateloggedonuser":  "Impersonates a logged-on user, allowing a thread to assume the user's security context.",
			"reverttoself":             "Terminates the impersonation of a client and reverts the thread's security context to the process.",
			"openthreadtoken":          "Opens the access token associated with a thread.",
			"duplicatetoken":           "Duplicates an access token.",
			"duplicatetokenex":         "Duplicates an access token with extended rights.",
			"gettokeninformation":      "Retrieves specified information about an access token.",
			"settokeninformation":      "Sets various types of information for an access token.",
			"convertsidtostringsid":    "Converts a binary SID to its string representation.",
			"convertstringsidtosid":    "Converts a string SID to a binary SID.",
			"cleareventlog":            "Clears the specified event log.",
			"encryptfile":              "Encrypts a file or directory.",
			"decryptfile":              "Decrypts a file or directory.",
			"getfilesecurity":          "Retrieves security information about a file.",
			"setfilesecurity":          "Sets security information for a file.",
		},
	},
	"ntdll.dll": {
		Description: "Contains low-level NT kernel routines and system call wrappers.",
		APIs: map[string]string{
			"ntcreatefile":              "Creates or opens a file using NT system calls.",
			"ntopenfile":                "Opens a file using NT system calls.",
			"ntreadfile":                "Reads data from a file using NT system calls.",
			"ntwritefile":               "Writes data to a file using NT system calls.",
			"ntclose":                   "Closes a handle using NT system calls.",
			"ntqueryinformationprocess": "Retrieves process information using NT system calls.",
			"ntquerysysteminformation":  "Retrieves system information using NT system calls.",
			"ntallocatevirtualmemory":   "Allocates virtual memory using NT system calls.",
			"ntfreevirtualmemory":       "Frees virtual memory using NT system calls.",
			"ntprotectvirtualmemory":    "Changes the protection on a region of virtual memory.",
			"ntreadvirtualmemory":       "Reads memory from a process's virtual address space using NT system calls.",
			"ntwritevirtualmemory":      "Writes memory to a process's virtual address space using NT system calls.",
			"ntopenprocess":             "Opens a process using NT system calls.",
			"ntterminateprocess":        "Terminates a process using NT system calls.",
			"ntdelayexecution":          "Delays execution of the current thread using NT system calls.",
			"ntqueryobject":             "Retrieves information about an NT object.",
			"ntquerydirectoryfile":      "Enumerates directory entries using NT system calls.",
			"ntcreatethread":            "Creates a thread using NT system calls.",
			"ntqueryinformationthread":  "Retrieves information about a thread using NT system calls.",
			"ntsetinformationthread":    "Sets information for a thread using NT system calls.",
			"ntcreatesection":           "Creates a section object for shared memory.",
			"ntmapviewofsection":        "Maps a view of a section into a process's virtual address space.",
			"ntunmapviewofsection":      "Unmaps a previously mapped view of a section.",
			"ntopenthread":              "Opens a handle to a thread using NT system calls.",
			"ntqueryvirtualmemory":      "Retrieves information about a region of virtual memory.",
			"ntflushinstructioncache":   "Flushes the instruction cache of a process.",
			"ntcontinue":                "Resumes execution of a thread interrupted by an exception.",
			"ntterminatethread":         "Terminates a thread using NT system calls.",
		},
	},
	"ws2_32.dll": {
		Description: "Implements the Windows Sockets API for network communications.",
		APIs: map[string]string{
			"socket":          "Creates a socket for network communications.",
			"bind":            "Associates a local address with a socket.",
			"listen":          "Places a socket in a state to accept incoming connections.",
			"accept":          "Accepts an incoming connection on a listening socket.",
			"connect":         "Establishes a connection to a remote socket.",
			"send":            "Sends data over a connected socket.",
			"recv":            "Receives data from a connected socket.",
			"sendto":          "Sends data to a specific destination address.",
			"recvfrom":        "Receives a datagram and stores the source address.",
			"closesocket":     "Closes a socket.",
			"ioctlsocket":     "Sets or retrieves the I/O mode of a socket.",
			"shutdown":        "Disables sends or receives on a socket.",
			"wsastartup":      "Initializes the Winsock library.",
			"wsacleanup":      "Terminates the use of the Winsock library.",
			"gethostbyname":   "Retrieves host information based on a host name.",
			"gethostbyaddr":   "Retrieves host information based on an IP address.",
			"select":          "Monitors multiple sockets for readiness to perform I/O.",
			"wsasend":         "Sends data over a socket with additional options.",
			"wsarecv":         "Receives data over a socket with additional options.",
			"wsasendto":       "Sends data to a specific destination over a socket.",
			"wsarecvfrom":     "Receives data from a specific source on a socket.",
			"getaddrinfo":     "Resolves a host name to an address, supporting both IPv4 and IPv6.",
			"freeaddrinfo":    "Frees memory allocated for address information by getaddrinfo.",
			"getnameinfo":     "Translates a socket address to a corresponding host and service.",
			"wsagetlasterror": "Retrieves the error status for the last Winsock operation.",
			"wsaioctl":        "Controls or retrieves the configuration of a socket.",
			"wsaconnect":      "Initiates a connection on a socket with additional parameters.",
		},
	},
	"wininet.dll": {
		Description: "Provides high-level Internet protocols for web operations.",
		APIs: map[string]string{
			"httpaddrequestheadersa":      "Adds extra HTTP request headers to an HTTP request handle.",
			"httpendrequesta":             "Ends an HTTP request initiated by HttpSendRequestEx.",
			"httpopenrequesta":            "Creates an HTTP request handle for a specified URL and method.",
			"httpqueryinfoa":              "Retrieves HTTP response headers or status information.",
			"httpsendrequesta":            "Sends the HTTP request and begins receiving the response.",
			"httpsendrequestexa":          "Sends an extended HTTP request with additional control options.",
			"internetclosehandle":         "Closes an Internet session or resource handle.",
			"internetconnecta":            "Establishes a connection to an FTP, Gopher, or HTTP server.",
			"internetcrackurla":           "Breaks a URL into its component parts.",
			"internetgetconnectedstate":   "Determines the connection state of the local system.",
			"internetopena":               "Initializes WinINet and returns a session handle.",
			"internetqueryoptiona":        "Retrieves an option value associated with an Internet handle.",
			"internetreadfile":            "Reads data from an Internet resource into a buffer.",
			"internetsetoptiona":          "Sets an option value for an Internet handle.",
			"internetwritefile":           "Writes data to an Internet resource over an established connection.",
			"internetopenurl":             "Opens a URL and returns an Internet handle.",
			"internetgetcookie":           "Retrieves cookie data associated with a URL.",
			"internetcombineurl":          "Combines a base URL and a relative URL into a complete URL.",
			"ftpgetfile":                  "Downloads a file from an FTP server.",
			"ftpputfile":                  "Uploads a file to an FTP server.",
			"internetquerydataavailable":  "Determines the amount of data available to read on an Internet handle.",
			"internetreadfileex":          "Extended version of InternetReadFile with additional options.",
			"internetgetlastresponseinfo": "Retrieves extended error information for Internet functions.",
		},
	},
	"ole32.dll": {
		Description: "Enables COM object creation, activation, and OLE functionality.",
		APIs: map[string]string{
			"oleinitialize":         "Initializes the OLE library for use by the calling process.",
			"oleuninitialize":       "Terminates the use of the OLE library on the current thread.",
			"coinitialize":          "Initializes the COM library on the current thread.",
			"couninitialize":        "Closes the COM library on the current thread.",
			"cocreateinstance":      "Creates a single uninitialized object of a given class.",
			"createstreamonhglobal": "Creates a stream object using an HGLOBAL memory handle.",
			"stgcreatedocfile":      "Creates and opens a compound file for structured storage.",
			"stgopenstorage":        "Opens an existing compound file for structured storage.",
			"dodragdrop":            "Initiates a drag-and-drop operation.",
			"olegetclipboard":       "Retrieves the clipboard object for OLE operations.",
			"olesetclipboard":       "Places an object on the clipboard for OLE operations.",
			"comarshalinterface":    "Marshals a COM interface pointer into a stream.",
		},
	},
	"oleaut32.dll": {
		Description: "Supports OLE Automation by handling VARIANTs, BSTRs, and COM interop.",
		APIs: map[string]string{
			"variantclear":          "Clears the contents of a VARIANT structure.",
			"variantcopy":           "Copies the contents of one VARIANT to another.",
			"variantinit":           "Initializes a VARIANT to VT_EMPTY.",
			"variantchangetype":     "Converts a VARIANT to a specified type.",
			"sysallocstring":        "Allocates a new BSTR from a given string.",
			"sysfreestring":         "Frees a BSTR allocated with SysAllocString.",
			"sysallocstringlen":     "Allocates a BSTR with a specified length.",
			"safearrayaccessdata":   "Locks a SAFEARRAY and returns a pointer to its data.",
			"safearrayunaccessdata": "Unlocks a SAFEARRAY after data access.",
			"safearraycreate":       "Creates a SAFEARRAY with specified bounds and type.",
			"safearraydestroy":      "Destroys a SAFEARRAY and frees its memory.",
			"safearraygetelement":   "Retrieves an element from a SAFEARRAY.",
			"safearrayputelement":   "Sets an element in a SAFEARRAY.",
			"dispinvoke":            "Invokes a method or property on a COM object using IDispatch.",
		},
	},
	"shell32.dll": {
		Description: "Contains Windows Shell routines for file operations and desktop management.",
		APIs: map[string]string{
			"shellexecutea":              "Launches a program or opens a file using the default application (ANSI version).",
			"shellexecutew":              "Launches a program or opens a file using the default application (Unicode version).",
			"shgetspecialfolderpatha":    "Retrieves the path of a special folder (ANSI version).",
			"shgetspecialfolderpathw":    "Retrieves the path of a special folder (Unicode version).",
			"shgetfileinfoa":             "Retrieves information about a file (ANSI version).",
			"shgetfileinfow":             "Retrieves information about a file (Unicode version).",
			"shgetdesktopfolder":         "Retrieves the IShellFolder interface for the desktop.",
			"shbrowseforfoldera":         "Displays a folder browsing dialog (ANSI version).",
			"shbrowseforfolderw":         "Displays a folder browsing dialog (Unicode version).",
			"dragqueryfilea":             "Retrieves file information from a drag-and-drop operation (ANSI version).",
			"dragqueryfilew":             "Retrieves file information from a drag-and-drop operation (Unicode version).",
			"shfileoperationa":           "Performs file operations like copy or move (ANSI version).",
			"shfileoperationw":           "Performs file operations like copy or move (Unicode version).",
			"extracticona":               "Extracts an icon from a specified file (ANSI version).",
			"extracticonw":               "Extracts an icon from a specified file (Unicode version).",
			"shgetfolderpatha":           "Retrieves the path of a special folder (ANSI version).",
			"shgetfolderpathw":           "Retrieves the path of a special folder (Unicode version).",
			"shgetspecialfolderlocation": "Retrieves a PIDL for a special folder.",
		},
	},
	"comdlg32.dll": {
		Description: "Implements common dialog box functions for file operations, color/font selection, and text search/replace.",
		APIs: map[string]string{
			"getopenfilenamea": "Displays an Open dialog box and retrieves the selected file (ANSI version).",
			"getopenfilenamew": "Displays an Open dialog box and retrieves the selected file (Unicode version).",
			"getsavefilenamea": "Displays a Save dialog box and retrieves the selected file name (ANSI version).",
			"getsavefilenamew": "Displays a Save dialog box and retrieves the selected file name (Unicode version).",
			"choosecolor":      "Displays a dialog box that enables the user to select a color.",
			"choosefont":       "Displays a dialog box that enables the user to choose a font.",
			"findtext":         "Displays a dialog box for searching text.",
			"replacetext":      "Displays a dialog box for replacing text.",
			"printdlg":         "Displays a Print dialog box to select printer settings.",
		},
	},
	"gdi32.dll": {
		Description: "Handles graphics operations, drawing, and font rendering.",
		APIs: map[string]string{
			"bitblt":                 "Performs a bit-block transfer of color data between device contexts.",
			"createcompatibledc":     "Creates a memory device context compatible with a specified device context.",
			"createcompatiblebitmap": "Creates a bitmap compatible with a specified device context.",
			"createdibsection":       "Creates a DIB section (bitmap) that can be directly written to.",
			"createfontindirecta":    "Creates a logical font using a LOGFONTA structure (ANSI version).",
			"createpen":              "Creates a logical pen with a specified style, width, and color.",
			"deletedc":               "Deletes a device context and frees its resources.",
			"deleteobject":           "Deletes a GDI object and releases its memory.",
			"getdevicecaps":          "Retrieves device-specific capabilities from a device context.",
			"getstockobject":         "Retrieves a handle to one of the stock GDI objects.",
			"rectangle":              "Draws a rectangle defined by specified coordinates.",
			"selectobject":           "Selects a GDI object into a device context for drawing.",
			"setbkmode":              "Sets the background mode (opaque or transparent) for text drawing.",
			"textouta":               "Draws a string at a specified position (ANSI version).",
			"textoutw":               "Draws a string at a specified position (Unicode version).",
			"stretchblt":             "Transfers a block of pixels with stretching or compressing.",
			"setpixel":               "Sets the color of an individual pixel in a device context.",
			"getpixel":               "Retrieves the color of a pixel at specified coordinates.",
		},
	},
	"comctl32.dll": {
		Description: "Provides common controls for Windows applications such as toolbars, status bars, and list views.",
		APIs: map[string]string{
			"initcommoncontrolsex":      "Initializes common control classes from the Common Controls DLL.",
			"imagelist_create":          "Creates an image list for use with common controls.",
			"imagelist_add":             "Adds an image to an image list.",
			"imagelist_destroy":         "Destroys an image list and frees its memory.",
			"propertysheeta":            "Creates a property sheet dialog box (ANSI version).",
			"propertysheetw":            "Creates a property sheet dialog box (Unicode version).",
			"createpropertysheetpagea":  "Creates a property sheet page (ANSI version).",
			"createpropertysheetpagew":  "Creates a property sheet page (Unicode version).",
			"flashwindowex":             "Flashes the specified window to draw attention.",
		},
	},
	"crypt32.dll": {
		Description: "Offers cryptographic services including certificate management, encryption, and decryption.",
		APIs: map[string]string{
			"cryptcreatehash":                 "Creates a hash object for computing cryptographic hashes.",
			"crypthashdata":                   "Hashes data and updates the hash object.",
			"cryptsignhash":                   "Signs a hash using a private key.",
			"cryptverifysignature":            "Verifies a cryptographic signature for a given hash.",
			"cryptdestroyhash":                "Destroys a hash object and frees its resources.",
			"certopenstore":                   "Opens a certificate store for managing certificates.",
			"certenumcertificatesinstore":     "Enumerates certificates in a certificate store.",
			"certfindcertificateinstore":      "Searches for a certificate in a certificate store.",
			"certfreecertificatecontext":      "Frees a certificate context structure.",
			"cryptacquirecontexta":            "Acquires a handle to a cryptographic service provider (ANSI version).",
			"cryptacquirecontextw":            "Acquires a handle to a cryptographic service provider (Unicode version).",
			"cryptreleasecontext":             "Releases a cryptographic service provider handle.",
			"cryptgenrandom":                  "Generates cryptographically strong random data.",
			"cryptencrypt":                    "Encrypts data using a specified cryptographic key.",
			"cryptdecrypt":                    "Decrypts data using a specified cryptographic key.",
			"cryptderivekey":                  "Derives a cryptographic key from a hash object.",
			"cryptimportkey":                  "Imports a cryptographic key from a key blob.",
			"cryptexportkey":                  "Exports a cryptographic key to a key blob.",
			"cryptdestroykey":                 "Destroys a cryptographic key and releases associated resources.",
			"cryptencodeobject":               "Encodes an object into a cryptographic message.",
			"cryptdecodeobject":               "Decodes an object from a cryptographic message.",
			"certverifycertificatechainpolicy": "Verifies the policy of a certificate chain.",
		},
	},
	"shlwapi.dll": {
		Description: "Provides utility functions for path manipulation, registry access, and string handling.",
		APIs: map[string]string{
			"pathfindextensiona":   "Finds the file extension in a path (ANSI version).",
			"pathfindextensionw":   "Finds the file extension in a path (Unicode version).",
			"pathcombinea":         "Combines two path strings into one (ANSI version).",
			"pathcombinew":         "Combines two path strings into one (Unicode version).",
			"pathstripfilenamea":   "Removes the file name from a path (ANSI version).",
			"pathstripfilenamew":   "Removes the file name from a path (Unicode version).",
			"pathremoveextensiona": "Removes the file extension from a path (ANSI version).",
			"pathremoveextensionw": "Removes the file extension from a path (Unicode version).",
			"pathcanonicalize":     "Converts a path to its canonical form.",
			"pathisrelative":       "Determines if a given path is relative.",
			"pathfileexists":       "Checks whether a specified file exists.",
			"urlescape":            "Escapes characters in a URL to make it valid.",
			"urlunescape":          "Reverts escaped characters in a URL to their original form.",
		},
	},
	"imm32.dll": {
		Description: "Manages input method editors (IMEs) for processing complex character input.",
		APIs: map[string]string{
			"immgetcontext":           "Retrieves the input context associated with a window.",
			"immreleasecontext":       "Releases an input context obtained via ImmGetContext.",
			"immsetcompositionwindow": "Sets the composition window for the IME.",
			"immgetcompositionstring": "Retrieves the composition string from the IME.",
			"immassociatecontext":     "Associates an input context with a window.",
			"immgetopenstatus":        "Determines whether the IME is open for a given context.",
			"immsetopenstatus":        "Sets the open status of the IME for a given context.",
			"immdisableime":           "Disables the IME for a specified window.",
		},
	},
	"msvcrt.dll": {
		Description: "The Microsoft C Runtime Library providing standard C functions.",
		APIs: map[string]string{
			"malloc":   "Allocates memory dynamically.",
			"free":     "Frees dynamically allocated memory.",
			"realloc":  "Resizes a previously allocated memory block.",
			"calloc":   "Allocates memory for an array and initializes it to zero.",
			"memcpy":   "Copies a block of memory from one location to another.",
			"memset":   "Fills a block of memory with a specified value.",
			"memmove":  "Safely copies a block of memory, handling overlapping regions.",
			"strcmp":   "Compares two strings.",
			"strcpy":   "Copies one string to another.",
			"strcat":   "Concatenates two strings.",
			"strlen":   "Returns the length of a string.",
			"strncpy":  "Copies a specified number of characters from one string to another.",
			"strncmp":  "Compares a specified number of characters of two strings.",
			"strchr":   "Finds the first occurrence of a character in a string.",
			"strstr":   "Finds the first occurrence of a substring in a string.",
			"strtok":   "Tokenizes a string based on specified delimiters.",
			"sprintf":  "Formats data into a string.",
			"sscanf":   "Reads formatted data from a string.",
			"snprintf": "Writes formatted output to a string with buffer size limitation.",
			"fopen":    "Opens a file and returns a pointer to a FILE object.",
			"fclose":   "Closes an open FILE object.",
			"fread":    "Reads data from a file into a buffer.",
			"fwrite":   "Writes data from a buffer to a file.",
			"fgets":    "Reads a line from a file into a buffer.",
			"fputs":    "Writes a string to a file.",
			"exit":     "Terminates the program.",
			"abort":    "Causes abnormal program termination.",
			"system":   "Executes a command string in the command processor.",
			"atoi":     "Converts a string to an integer.",
			"atof":     "Converts a string to a floating-point number.",
			"rand":     "Generates a pseudo-random number.",
			"srand":    "Seeds the pseudo-random number generator.",
			"qsort":    "Sorts an array using a comparison function.",
		},
	},
	"version.dll": {
		Description: "Retrieves version information from files for version checking.",
		APIs: map[string]string{
			"getfileversioninfoa":     "Retrieves version information for a file (ANSI version).",
			"getfileversioninfow":     "Retrieves version information for a file (Unicode version).",
			"getfileversioninfosizea": "Retrieves the size of version information for a file (ANSI version).",
			"getfileversioninfosizew": "Retrieves the size of version information for a file (Unicode version).",
			"verqueryvaluea":          "Retrieves specified version information (ANSI version).",
			"verqueryvaluew":          "Retrieves specified version information (Unicode version).",
		},
	},
	"psapi.dll": {
		Description: "Provides process status functions for enumerating processes and modules.",
		APIs: map[string]string{
			"enumprocesses":           "Enumerates all active process identifiers.",
			"enumprocessmodules":      "Retrieves handles for all modules in a specified process.",
			"getmoduleinformation":    "Retrieves information about a module in a process.",
			"getmodulefilenameex":     "Retrieves the fully qualified path for a module in a process.",
			"getprocessmemoryinfo":    "Retrieves memory usage information for a specified process.",
			"getprocessimagefilename": "Retrieves the image file name for a specified process.",
			"enumdevicedrivers":       "Enumerates all loaded device drivers in the system.",
			"getperformanceinfo":      "Retrieves performance information about the system.",
		},
	},
	"setupapi.dll": {
		Description: "Supports device installation and configuration.",
		APIs: map[string]string{
			"setupdigetclassdescriptiona":     "Retrieves the class description for a device setup class (ANSI version).",
			"setupdigetclassdescriptionw":     "Retrieves the class description for a device setup class (Unicode version).",
			"setupdienumdeviceinterfaces":     "Enumerates device interfaces for a setup class.",
			"setupdienumdeviceinfo":           "Enumerates devices in a device information set.",
			"setupdigetdeviceregistryproperty": "Retrieves a device's registry property.",
			"setupdidestroydevinfolist":       "Destroys a device information set and frees its resources.",
		},
	},
	"iphlpapi.dll": {
		Description: "Offers helper functions for IP configuration and network diagnostics.",
		APIs: map[string]string{
			"getadaptersaddresses": "Retrieves network adapter addresses for the local system.",
			"getiftable":           "Retrieves a table of network interface information.",
			"getifentry":           "Retrieves information for a specified network interface.",
			"getnetworkparams":     "Retrieves network parameters for the local system.",
			"getbestinterface":     "Determines the best network interface for a given destination.",
			"getipforwardtable":    "Retrieves the IP routing table for the local system.",
			"gettcpstatistics":     "Retrieves TCP statistics for the local system.",
			"getudpstatistics":     "Retrieves UDP statistics for the local system.",
		},
	},
	"urlmon.dll": {
		Description: "Implements URL monikers used for downloading and security zone handling.",
		APIs: map[string]string{
			"urldownloadtofile":  "Downloads a resource from a URL and saves it to a file.",
			"urldownloadtocachefile": "Downloads a resource into the Internet cache.",
			"findmimefromdata":   "Determines the MIME type from a data buffer.",
			"createurlmoniker":   "Creates a URL moniker from a URL string.",
		},
	},
}
