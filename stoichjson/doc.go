package stoichjson

//Package stoichjson implements the serialization of goStoich requests
//and results. Its planned use is the communication of goStoich with
//other, independent programs (a web front end, a spreadsheet macro, a
//script in another language) as long as they can read and write JSON.
//Requests and responses are exchanged one per line, for instance via
//UNIX pipes, so an external program can send a job and later collect
//the results.
